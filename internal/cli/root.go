package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
)

// SetVersion sets the version shown by --version; main injects it via ldflags.
func SetVersion(v, c string) {
	version, commit = v, c
}

// app is the state shared by all commands of one invocation.
type app struct {
	stderr     io.Writer
	verbose    bool
	configPath string
	logFile    string

	cfg    Config
	closer io.Closer
}

// NewRootCommand builds the flis command tree. Log lines go to stderr unless
// --log-file or the config redirects them.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:   "flis",
		Short: "flis computes leaf functions of graphs",
		Long: `flis computes, for every size i, the maximum number of leaves of an induced
subtree with i vertices, together with the subtrees reaching it.`,
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	if commit != "" {
		root.SetVersionTemplate(fmt.Sprintf("flis %s\ncommit: %s\n", version, commit))
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML file with default settings")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to a rotating file")

	root.AddCommand(a.solveCommand())
	root.AddCommand(a.renderCommand())
	root.AddCommand(a.enumerateCommand())
	root.AddCommand(a.classifyCommand())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var unknown []string
	if a.configPath != "" {
		cfg, keys, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg, unknown = cfg, keys
	}

	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}

	lc := a.cfg.Log
	if a.logFile != "" {
		lc.File = a.logFile
	}
	w := a.stderr
	if lc.File != "" {
		var err error
		if lc.File, err = expandHome(lc.File); err != nil {
			return err
		}
		f := rotatingFile(lc)
		a.closer, w = f, f
	}

	logger := newLogger(w, level)
	for _, k := range unknown {
		logger.Warn("unknown config key", "key", k, "file", a.configPath)
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil

	return errors.Wrap(err, "close log file")
}

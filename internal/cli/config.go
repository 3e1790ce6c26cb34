package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds defaults read from a TOML file. Command-line flags win. A
// leading "~/" in store and log.file stands for the home directory.
//
//	algorithm = "general"
//	strategy = "dist"
//	max_witnesses = 3
//	store = "~/.cache/flis"
//
//	[log]
//	file = "flis.log"
//	max_size = 10
//	max_age = 7
type Config struct {
	Algorithm    string    `toml:"algorithm"`
	Strategy     string    `toml:"strategy"`
	MaxWitnesses int       `toml:"max_witnesses"`
	Parallelism  int       `toml:"parallelism"`
	Store        string    `toml:"store"`
	Log          LogConfig `toml:"log"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File    string `toml:"file"`
	MaxSize int    `toml:"max_size"`
	MaxAge  int    `toml:"max_age"`
}

// loadConfig decodes path. Unknown keys are returned so the caller can warn.
func loadConfig(path string) (Config, []string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, errors.Wrapf(err, "config %s", path)
	}

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}

	return cfg, unknown, nil
}

// pickString returns the flag value when the user set it, else the config
// value when non-empty, else the flag default.
func pickString(cmd *cobra.Command, flag, flagVal, cfgVal string) string {
	if cmd.Flags().Changed(flag) || cfgVal == "" {
		return flagVal
	}
	return cfgVal
}

func pickInt(cmd *cobra.Command, flag string, flagVal, cfgVal int) int {
	if cmd.Flags().Changed(flag) || cfgVal == 0 {
		return flagVal
	}
	return cfgVal
}

// expandHome replaces a leading "~" or "~/" in path with the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrapf(err, "expand %s", path)
	}

	return filepath.Join(home, path[1:]), nil
}

// Command flis computes leaf functions of graphs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/katalvlaran/flis/internal/cli"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	ctx, stop := cli.NotifyContext(context.Background(), os.Exit, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version, commit)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(cli.ExitInterrupted)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

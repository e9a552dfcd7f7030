// Command pointvis lays out and animates point collections.
//
//	pointvis run --points 2000 --layout spiral
//	pointvis layout --points 16 --format yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := newCLI(os.Stderr, log.InfoLevel)
	root := c.rootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.logger.SetLevel(log.DebugLevel)
		}
		return nil
	}
	return root.ExecuteContext(ctx)
}

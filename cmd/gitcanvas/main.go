// Command gitcanvas renders GitHub profile cards as SVG, from the command
// line or as an HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gitcanvas/gitcanvas/internal/cli"
	"github.com/gitcanvas/gitcanvas/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	c.Config = config.Load()

	root := c.RootCommand()
	root.SilenceErrors = true
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "log cache, HTTP and render events")

	attach := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return attach(cmd, args)
	}

	return c.Exit(root.ExecuteContext(ctx))
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitcanvas/gitcanvas/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cards over HTTP",
		Long: `Run the HTTP card service.

  GET /api/stats?username=octocat&theme=Glass
  GET /api/languages?username=octocat
  GET /api/contributions?username=octocat&theme=Gaming

Responses are image/svg+xml. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			renderer, err := c.newRenderer()
			if err != nil {
				return err
			}
			src, release, err := c.newSource(ctx)
			if err != nil {
				return err
			}
			defer release()

			printInfo("Serving %d themes on %s", renderer.Themes.Len(), c.Config.Addr)
			if c.Config.Offline {
				printWarning("Offline: every user gets the sample profile")
			}
			return server.New(renderer, src, server.WithLogger(loggerFromContext(ctx))).ListenAndServe(ctx, c.Config.Addr)
		},
	}

	cmd.Flags().StringVar(&c.Config.Addr, "addr", c.Config.Addr, "listen address")
	return cmd
}

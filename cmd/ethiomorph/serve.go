// Serve command runs the REST API.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ethiomorph/ethiomorph/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, c.cfg, c.engine, c.logger)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :9011)")
	cmd.Flags().StringSlice("cors-origins", nil, "allowed CORS origins (default *)")
	return cmd
}

package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pagimos/portfolio/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the page and its assets over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			gin.SetMode(a.cfg.Mode)

			r, err := server.New(server.Options{
				Site:           a.site,
				Assets:         a.assets,
				Logger:         a.log,
				TrustedProxies: a.cfg.TrustedProxies,
			})
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", a.cfg.Addr())
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", a.cfg.Addr(), err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("serving portfolio", "addr", ln.Addr().String(), "mode", a.cfg.Mode)
			if err := server.Serve(ctx, ln, r, a.cfg.ShutdownTimeout); err != nil {
				return err
			}
			a.log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to serve on (overrides config and PORT)")
	return cmd
}


package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/metrics"
	"github.com/abhisek/fractiz/internal/server"
	"github.com/abhisek/fractiz/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	bindFlag(v, "server.addr", serveCmd.Flags().Lookup("addr"))
}

// runServe builds the web server and runs it until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	gin.SetMode(cfg.Server.Mode)

	events, closeEvents := openEvents()
	defer closeEvents()

	opts := server.Options{
		Tutor:        loadTutor(),
		Codec:        session.NewCodec(cfg.Session.Secret),
		Events:       events,
		Logger:       appLog,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Session.Secure,
		RateLimit:    cfg.RateLimit.PerMinute,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, cfg.Server.Addr)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/seldom-dev/seldom/internal/config"
	"github.com/seldom-dev/seldom/pkg/middleware"
	"github.com/seldom-dev/seldom/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the site with live reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			srv := preview.NewServer(demoSite(), preview.Options{
				Host:       cfg.Server.Host,
				Port:       cfg.Server.Port,
				LiveReload: !noReload,
				Pretty:     true,
				Metrics:    middleware.NewMetrics(),
				Tracing:    true,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !noReload {
				watcher := preview.NewWatcher(cfg.Watch, 500*time.Millisecond, func(path string) {
					info("changed: %s", path)
					srv.Hub().NotifyReload(path)
				})
				go watcher.Run(ctx)
			}

			printBanner()
			success("Preview server running at http://%s", srv.Addr())
			if noReload {
				warn("Live reload disabled")
			}
			info("Press Ctrl+C to stop")

			if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

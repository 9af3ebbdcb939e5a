package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/minireact/internal/config"
	"github.com/vango-dev/minireact/pkg/server"
)

// serveOptions are command-line overrides for the config file.
type serveOptions struct {
	port     int
	host     string
	root     string
	noReload bool
	tracing  bool
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an app directory",
		Long: `Serve the root directory as static files and the entry page at "/".

Connected browsers reload when files under the root change.

Examples:
  minireact serve
  minireact serve --port=8080 --root=./public
  minireact serve --no-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			opts.apply(cfg)
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port to listen on (default from config, 5000)")
	cmd.Flags().StringVarP(&opts.host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Directory to serve (default from config)")
	cmd.Flags().BoolVar(&opts.noReload, "no-reload", false, "Disable live reload")
	cmd.Flags().BoolVar(&opts.tracing, "tracing", false, "Record OpenTelemetry spans for requests")

	return cmd
}

func (o serveOptions) apply(cfg *config.Config) {
	if o.port > 0 {
		cfg.Port = o.port
	}
	if o.host != "" {
		cfg.Host = o.host
	}
	if o.root != "" {
		cfg.Root = o.root
	}
	if o.noReload {
		cfg.Dev.LiveReload = false
	}
	if o.tracing {
		cfg.Tracing.Enabled = true
	}
}

func runServe(cfg *config.Config) error {
	logger := newLogger(cfg)

	srv, err := server.New(cfg, server.WithLogger(logger))
	if err != nil {
		return err
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Println("\n\n  Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		select {
		case <-srv.Ready():
			success("Server listening on http://%s", srv.Addr())
			info("Root:    %s", cfg.RootPath())
			if cfg.Dev.LiveReload {
				info("Reload:  on")
			} else {
				warn("Live reload disabled")
			}
			if cfg.Metrics.Enabled {
				info("Metrics: http://%s%s", srv.Addr(), cfg.Metrics.Path)
			}
			fmt.Println()
		case <-ctx.Done():
		}
	}()

	return srv.Run(ctx)
}

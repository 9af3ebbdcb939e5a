package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/minireact/internal/config"
	"github.com/vango-dev/minireact/internal/demo"
	"github.com/vango-dev/minireact/pkg/dom/memdom"
	"github.com/vango-dev/minireact/pkg/middleware"
	"github.com/vango-dev/minireact/pkg/reconcile"
	"github.com/vango-dev/minireact/pkg/render"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// defaultPage is used when the configured entry page does not exist.
const defaultPage = `<!DOCTYPE html><html><head><title>minireact</title></head><body><div id="root"></div></body></html>`

type demoOptions struct {
	delay   time.Duration
	metrics bool
	static  bool
}

func demoCmd(flags *globalFlags) *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the two-step demo into an in-memory document",
		Long: `Render the demo page into the #root element of the entry page,
print the HTML, wait, render the changed page and print it again.

Examples:
  minireact demo
  minireact demo --delay=0 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				opts.delay = cfg.DemoDelay()
			}
			if opts.static {
				return runStatic(cmd.OutOrStdout())
			}
			return runDemo(cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.delay, "delay", "d", config.DefaultDemoDelay, "Pause before the second render")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print render metrics in Prometheus text format afterwards")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Print the markup of both steps without rendering into a document")

	return cmd
}

func runDemo(out io.Writer, cfg *config.Config, opts demoOptions) error {
	logger := newLogger(cfg)

	doc, err := loadPage(cfg)
	if err != nil {
		return err
	}
	container := doc.GetElementByID("root")
	if container == nil {
		container = doc.Body()
		warn("No #root element in %s; rendering into <body>", cfg.Entry)
	}

	engineOpts := []reconcile.Option{reconcile.WithLogger(logger)}
	registry := prometheus.NewRegistry()
	if opts.metrics {
		m := middleware.NewMetrics(middleware.WithRegistry(registry))
		engineOpts = append(engineOpts, reconcile.WithObserver(m))
	}
	engine := reconcile.New(engineOpts...)

	alert := func(msg string) {
		info("alert: %s", msg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = demo.Run(ctx, engine, container, alert, opts.delay, func(step int, stats reconcile.Stats) {
		success("Step %d rendered (%s)", step, stats)
		fmt.Fprintln(out, container.OuterHTML())
		if step == 1 && opts.delay > 0 {
			info("Next render in %s", opts.delay)
		}
	})
	if err != nil {
		return err
	}

	if opts.metrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// runStatic prints both steps as a fresh mount would produce them.
func runStatic(out io.Writer) error {
	r := render.New(render.Config{Pretty: true})
	noop := func(string) {}
	for i, step := range []*vdom.VNode{demo.Step1(noop), demo.Step2(noop)} {
		fmt.Fprintf(out, "<!-- step %d -->\n", i+1)
		if err := r.Write(out, step); err != nil {
			return err
		}
	}
	return nil
}

// loadPage parses the entry page, or a blank page with a #root element when
// the entry does not exist.
func loadPage(cfg *config.Config) (*memdom.Document, error) {
	f, err := os.Open(filepath.Join(cfg.RootPath(), cfg.Entry))
	if err != nil {
		return memdom.Parse(strings.NewReader(defaultPage))
	}
	defer f.Close()
	return memdom.Parse(f)
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

//go:build js && wasm

// Command minireact-wasm runs the demo in the browser. Build it with
//
//	GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/minireact-wasm
//
// and serve the repository root with "minireact serve".
package main

import (
	"context"
	"log/slog"
	"syscall/js"

	"github.com/vango-dev/minireact/internal/config"
	"github.com/vango-dev/minireact/internal/demo"
	"github.com/vango-dev/minireact/internal/logging"
	"github.com/vango-dev/minireact/pkg/dom/jsdom"
	"github.com/vango-dev/minireact/pkg/reconcile"
)

func main() {
	logger := logging.New(slog.LevelInfo)

	doc := jsdom.New()
	root := doc.GetElementByID("root")
	if root == nil {
		logger.Error("no #root element on the page")
		return
	}

	engine := reconcile.New(reconcile.WithLogger(logger))
	alert := func(msg string) {
		js.Global().Call("alert", msg)
	}

	err := demo.Run(context.Background(), engine, root, alert, config.DefaultDemoDelay, func(step int, stats reconcile.Stats) {
		logger.Info("rendered", "step", step, "stats", stats.String())
	})
	if err != nil {
		logger.Error("demo failed", "error", err)
		return
	}

	// Event handlers run on this program; keep it alive.
	select {}
}

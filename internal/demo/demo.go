// Package demo renders the two-step sample page: a first tree immediately and
// a changed tree after a delay, so the second render shows in-place updates,
// a replacement and deletions.
package demo

import (
	"context"
	"time"

	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/reconcile"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// Alert shows a message to the user. The browser build uses window.alert.
type Alert func(msg string)

// Step1 is the page as first rendered.
func Step1(alert Alert) *vdom.VNode {
	return vdom.Build("div", nil,
		vdom.Build("h1", vdom.Attrs{"className": "header"}, " Hello Mini React "),
		vdom.Build("h2", nil, " (Coding MiniReact) "),
		vdom.Build("div", nil, " nested 1", vdom.Build("div", nil, "nested 1.1")),
		vdom.Build("h3", nil, "(Notice: This will chnage)"),
		vdom.If(2 == 1, vdom.Build("div", nil, " Render this if 2==1")),
		vdom.If(2 == 2, vdom.Build("div", nil, 2)),
		vdom.Build("span", nil, "This is a text"),
		vdom.Build("button", vdom.Attrs{"onClick": func() { alert("Hi!") }}, "Click me!"),
		vdom.Build("h3", nil, "This will be deleted"),
		"2,3",
	)
}

// Step2 is the page after the delay. The notice text and header class change,
// the span becomes a paragraph, the button gets a new handler, and the last
// heading and the trailing text are gone.
func Step2(alert Alert) *vdom.VNode {
	return vdom.Build("div", nil,
		vdom.Build("h1", vdom.Attrs{"className": "header updated"}, " Hello Mini React "),
		vdom.Build("h2", nil, " (Coding MiniReact) "),
		vdom.Build("div", nil, " nested 1", vdom.Build("div", nil, "nested 1.1")),
		vdom.Build("h3", nil, "(Notice: This has changed)"),
		vdom.Build("div", nil, 2),
		vdom.Build("p", nil, "This is a text"),
		vdom.Build("button", vdom.Attrs{"onClick": func() { alert("Hi again!") }}, "Click me!"),
	)
}

// RenderFunc is called after each step renders.
type RenderFunc func(step int, stats reconcile.Stats)

// Run renders Step1 into container, waits delay, then renders Step2. It
// returns early with ctx's error if ctx is done before the second render.
func Run(ctx context.Context, engine *reconcile.Engine, container dom.Node, alert Alert, delay time.Duration, onRender RenderFunc) error {
	steps := []func(Alert) *vdom.VNode{Step1, Step2}

	for i, step := range steps {
		if i > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		if err := engine.Render(step(alert), container); err != nil {
			return err
		}
		if onRender != nil {
			onRender(i+1, engine.LastStats())
		}
	}
	return nil
}

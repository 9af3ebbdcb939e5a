// Package minireact is the public API of the minireact virtual-DOM library.
//
// Build describes UI as a tree; Render makes a real container match it:
//
//	tree := minireact.Build("div", minireact.Attrs{"className": "app"},
//	    minireact.Build("h1", nil, "Hello"),
//	    count > 0 && showCount, // false is dropped
//	)
//	if err := minireact.Render(tree, container); err != nil {
//	    log.Fatal(err)
//	}
//
// Calling Render again with a new tree updates the real nodes in place,
// touching only what changed.
package minireact

import (
	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/reconcile"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// =============================================================================
// Tree descriptions (re-export from pkg/vdom)
// =============================================================================

// VNode is an immutable tree description.
type VNode = vdom.VNode

// Attrs maps attribute and event names to values.
type Attrs = vdom.Attrs

// Component produces a tree description when rendered.
type Component = vdom.Component

// Build creates a tree description. See vdom.Build.
func Build(kind any, attrs Attrs, children ...any) *VNode {
	return vdom.Build(kind, attrs, children...)
}

// H creates an element from a mix of attributes, event handlers and children.
func H(tag string, args ...any) *VNode {
	return vdom.H(tag, args...)
}

// Text creates a text description.
func Text(value any) *VNode {
	return vdom.Text(value)
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return vdom.Func(render)
}

// =============================================================================
// Rendering (default engine from pkg/reconcile)
// =============================================================================

// Engine reconciles descriptions into real nodes.
type Engine = reconcile.Engine

// NewEngine creates an engine with its own bookkeeping.
func NewEngine(opts ...reconcile.Option) *Engine {
	return reconcile.New(opts...)
}

var defaultEngine = reconcile.New()

// Render makes the first child of container match desc using the default
// engine. The default engine is not safe for concurrent use; programs that
// render from several goroutines need one engine each.
func Render(desc *VNode, container dom.Node) error {
	return defaultEngine.Render(desc, container)
}

// MustRender is like Render but panics on error.
func MustRender(desc *VNode, container dom.Node) {
	defaultEngine.MustRender(desc, container)
}

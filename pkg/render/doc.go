// Package render serializes tree descriptions to HTML without a host
// document.
//
// The output is the markup a fresh mount would produce: components are
// resolved, falsy attributes and event handlers are skipped, className is
// written as class, and a true checked property becomes a bare attribute.
// Attributes are sorted so the output is deterministic.
//
//	html, err := render.String(vdom.Div(vdom.ClassName("app"), "hi"))
//	// <div class="app">hi</div>
package render

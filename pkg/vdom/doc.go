// Package vdom provides the tree description used by minireact.
//
// A tree description is a lightweight, immutable value describing the UI a
// caller wants on screen. The reconcile package mounts descriptions into real
// nodes and diffs successive descriptions against them.
//
// # Core Types
//
// VNode is a tagged union: KindElement (a tag with attributes and children),
// KindText (a "text" node holding its value under the textContent attribute)
// and KindComponent (a callable resolved into another description at render
// time). Attrs maps attribute and event names to values and always carries a
// "children" entry mirroring Children.
//
// # Building Trees
//
// Build is the primitive constructor:
//
//	Build("div", Attrs{"className": "card"},
//	    Build("h1", nil, "Title"),
//	    cond && Build("p", nil, "only when cond"),
//	    []any{"a", 1, nil, false},
//	)
//
// Children are flattened, nil and boolean entries are dropped, and every
// remaining value that is not a description becomes a text node.
//
// The element helpers offer the same thing in variadic form, mixing
// attributes, event handlers and children:
//
//	Div(ClassName("card"), OnClick(handler),
//	    H1("Title"),
//	    P("Content"),
//	)
package vdom

package vdom

import (
	"fmt"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Callable resolved at render time
)

// TextTag is the kind name shared by all text descriptions.
const TextTag = "text"

// Reserved attribute keys.
const (
	ChildrenKey    = "children"
	TextContentKey = "textContent"
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is a tree description. Treat it as immutable once built.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name, or TextTag for text nodes
	Attrs    Attrs     // Attributes, event handlers and the children mirror
	Children []*VNode  // Normalized child descriptions
	Comp     Component // For KindComponent
}

// Attrs holds attributes and event handlers.
type Attrs map[string]any

// Component is anything that can produce a tree description.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// IsText reports whether v is a text description.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// IsComponent reports whether v must be resolved before mount or diff.
func (v *VNode) IsComponent() bool {
	return v != nil && v.Kind == KindComponent
}

// TextContent returns the text of a text description as it is written to the
// real node.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	return Stringify(v.Attrs[TextContentKey])
}

// SameKind reports whether a real node built from v can be updated in place
// to match other.
func (v *VNode) SameKind(other *VNode) bool {
	if v == nil || other == nil {
		return false
	}
	return v.Kind == other.Kind && v.Tag == other.Tag
}

// IsInteractive returns true if this node binds at least one event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Attrs {
		if IsEventKey(key) && !IsFalsy(value) {
			return true
		}
	}
	return false
}

// String returns a compact, debug-friendly rendering of the tree.
func (v *VNode) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v *VNode) writeTo(b *strings.Builder) {
	switch {
	case v == nil:
		b.WriteString("<nil>")
	case v.Kind == KindText:
		fmt.Fprintf(b, "%q", v.TextContent())
	case v.Kind == KindComponent:
		fmt.Fprintf(b, "<%T>", v.Comp)
	default:
		b.WriteString("<")
		b.WriteString(v.Tag)
		b.WriteString(">")
		for _, child := range v.Children {
			child.writeTo(b)
		}
		b.WriteString("</")
		b.WriteString(v.Tag)
		b.WriteString(">")
	}
}

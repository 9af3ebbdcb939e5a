package memdom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/minireact/pkg/dom"
)

// Node wraps an *html.Node. There is exactly one *Node per *html.Node in a
// document.
type Node struct {
	doc       *Document
	n         *html.Node
	props     map[string]any
	listeners map[string][]dom.Listener
}

var _ dom.Node = (*Node)(nil)

// HTMLNode returns the underlying *html.Node.
func (w *Node) HTMLNode() *html.Node { return w.n }

// NodeName implements dom.Node.
func (w *Node) NodeName() string {
	switch w.n.Type {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	default:
		return w.n.Data
	}
}

// OwnerDocument implements dom.Node.
func (w *Node) OwnerDocument() dom.Document { return w.doc }

func (w *Node) FirstChild() dom.Node  { return w.doc.wrap(w.n.FirstChild) }
func (w *Node) NextSibling() dom.Node { return w.doc.wrap(w.n.NextSibling) }
func (w *Node) ParentNode() dom.Node  { return w.doc.wrap(w.n.Parent) }

// AppendChild implements dom.Node.
func (w *Node) AppendChild(child dom.Node) {
	w.InsertBefore(child, nil)
}

// InsertBefore implements dom.Node. child must belong to the same document.
func (w *Node) InsertBefore(child, ref dom.Node) {
	c := w.own(child)
	var r *html.Node
	if ref != nil {
		r = w.own(ref).n
		if r.Parent != w.n {
			panic("memdom: InsertBefore reference is not a child of this node")
		}
	}
	c.detach()
	w.n.InsertBefore(c.n, r)
	w.doc.record(Mutation{Op: OpInsertNode, Target: c, Parent: w})
}

// Remove implements dom.Node.
func (w *Node) Remove() {
	w.detach()
}

func (w *Node) detach() {
	parent := w.n.Parent
	if parent == nil {
		return
	}
	parent.RemoveChild(w.n)
	w.doc.record(Mutation{Op: OpRemoveNode, Target: w, Parent: w.doc.node(parent)})
}

func (w *Node) own(n dom.Node) *Node {
	o, ok := n.(*Node)
	if !ok || o.doc != w.doc {
		panic(fmt.Sprintf("memdom: node %v belongs to another document", n))
	}
	return o
}

// SetAttribute implements dom.Node.
func (w *Node) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	w.doc.record(Mutation{Op: OpSetAttr, Target: w, Name: name, Value: value})
	for i, a := range w.n.Attr {
		if a.Namespace == "" && a.Key == name {
			w.n.Attr[i].Val = value
			return
		}
	}
	w.n.Attr = append(w.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute implements dom.Node. Removing a missing attribute is not
// recorded.
func (w *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range w.n.Attr {
		if a.Namespace == "" && a.Key == name {
			w.n.Attr = append(w.n.Attr[:i], w.n.Attr[i+1:]...)
			w.doc.record(Mutation{Op: OpRemoveAttr, Target: w, Name: name})
			return
		}
	}
}

// GetAttribute implements dom.Node.
func (w *Node) GetAttribute(name string) (string, bool) {
	return attr(w.n, strings.ToLower(name))
}

// SetProperty implements dom.Node.
func (w *Node) SetProperty(name string, value any) {
	if value == nil {
		delete(w.props, name)
		w.doc.record(Mutation{Op: OpSetProperty, Target: w, Name: name})
		return
	}
	if w.props == nil {
		w.props = make(map[string]any)
	}
	w.props[name] = value
	w.doc.record(Mutation{Op: OpSetProperty, Target: w, Name: name, Value: fmt.Sprint(value)})
}

// Property implements dom.Node.
func (w *Node) Property(name string) any {
	return w.props[name]
}

// AddEventListener implements dom.Node. Adding a listener that is already
// subscribed for the event does nothing.
func (w *Node) AddEventListener(event string, l dom.Listener) {
	for _, existing := range w.listeners[event] {
		if existing == l {
			return
		}
	}
	if w.listeners == nil {
		w.listeners = make(map[string][]dom.Listener)
	}
	w.listeners[event] = append(w.listeners[event], l)
	w.doc.record(Mutation{Op: OpAddListener, Target: w, Name: event})
}

// RemoveEventListener implements dom.Node.
func (w *Node) RemoveEventListener(event string, l dom.Listener) {
	list := w.listeners[event]
	for i, existing := range list {
		if existing == l {
			w.listeners[event] = append(list[:i:i], list[i+1:]...)
			if len(w.listeners[event]) == 0 {
				delete(w.listeners, event)
			}
			w.doc.record(Mutation{Op: OpRemoveListener, Target: w, Name: event})
			return
		}
	}
}

// ListenerCount returns how many listeners are subscribed for event.
func (w *Node) ListenerCount(event string) int {
	return len(w.listeners[event])
}

// SetTextContent implements dom.Node. On elements it replaces all children
// with a single text node.
func (w *Node) SetTextContent(text string) {
	if w.n.Type == html.TextNode {
		w.n.Data = text
		w.doc.record(Mutation{Op: OpSetText, Target: w, Value: text})
		return
	}
	for c := w.n.FirstChild; c != nil; {
		next := c.NextSibling
		w.n.RemoveChild(c)
		c = next
	}
	if text != "" {
		w.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	w.doc.record(Mutation{Op: OpSetText, Target: w, Value: text})
}

// TextContent implements dom.Node.
func (w *Node) TextContent() string {
	if w.n.Type == html.TextNode {
		return w.n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			} else {
				walk(c)
			}
		}
	}
	walk(w.n)
	return b.String()
}

// OuterHTML serializes the node and its subtree.
func (w *Node) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, w.n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serializes the node's children.
func (w *Node) InnerHTML() string {
	var buf bytes.Buffer
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// String returns OuterHTML.
func (w *Node) String() string { return w.OuterHTML() }

func (w *Node) label() string {
	if w == nil {
		return "<nil>"
	}
	if w.n.Type == html.TextNode {
		return fmt.Sprintf("#text(%q)", w.n.Data)
	}
	return "<" + w.NodeName() + ">"
}

//go:build js && wasm

// Package jsdom implements the dom interfaces on top of the browser DOM via
// syscall/js.
//
// Every real node handed to the engine is wrapped exactly once: the wrapper
// is found again through a numeric id stored as a property on the JS node, so
// the same browser node always yields the same dom.Node value.
package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/vango-dev/minireact/pkg/dom"
)

// idProperty is the JS property holding a node's wrapper id.
const idProperty = "__minireactID"

// Document wraps the browser document.
type Document struct {
	v      js.Value
	nodes  map[int]*Node
	nextID int
}

var _ dom.Document = (*Document)(nil)

// New wraps the global document.
func New() *Document {
	return Wrap(js.Global().Get("document"))
}

// Wrap wraps a JS document object.
func Wrap(v js.Value) *Document {
	return &Document{v: v, nodes: make(map[int]*Node)}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Node {
	return d.node(d.v.Call("createElement", tag))
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return d.node(d.v.Call("createTextNode", text))
}

// GetElementByID returns the element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	v := d.v.Call("getElementById", id)
	if isNothing(v) {
		return nil
	}
	return d.node(v)
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *Node {
	v := d.v.Get("body")
	if isNothing(v) {
		return nil
	}
	return d.node(v)
}

// node returns the unique wrapper for v.
func (d *Document) node(v js.Value) *Node {
	if id := v.Get(idProperty); id.Type() == js.TypeNumber {
		if n, ok := d.nodes[id.Int()]; ok {
			return n
		}
	}
	d.nextID++
	n := &Node{doc: d, v: v}
	v.Set(idProperty, d.nextID)
	d.nodes[d.nextID] = n
	return n
}

// release forgets the wrappers of v and its descendants. Wrappers with
// subscribed listeners are kept so they can still be unsubscribed.
func (d *Document) release(v js.Value) {
	for c := v.Get("firstChild"); !isNothing(c); c = c.Get("nextSibling") {
		d.release(c)
	}
	id := v.Get(idProperty)
	if id.Type() != js.TypeNumber {
		return
	}
	if n, ok := d.nodes[id.Int()]; ok && len(n.funcs) == 0 {
		delete(d.nodes, id.Int())
		v.Delete(idProperty)
	}
}

// wrap is node with a nil-safe dom.Node result.
func (d *Document) wrap(v js.Value) dom.Node {
	if isNothing(v) {
		return nil
	}
	return d.node(v)
}

func isNothing(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// Node wraps a browser node.
type Node struct {
	doc   *Document
	v     js.Value
	funcs map[dom.Listener]map[string]js.Func
}

var _ dom.Node = (*Node)(nil)

// Value returns the wrapped JS node.
func (n *Node) Value() js.Value { return n.v }

func (n *Node) NodeName() string {
	return strings.ToLower(n.v.Get("nodeName").String())
}

func (n *Node) OwnerDocument() dom.Document { return n.doc }

func (n *Node) FirstChild() dom.Node  { return n.doc.wrap(n.v.Get("firstChild")) }
func (n *Node) NextSibling() dom.Node { return n.doc.wrap(n.v.Get("nextSibling")) }
func (n *Node) ParentNode() dom.Node  { return n.doc.wrap(n.v.Get("parentNode")) }

func (n *Node) AppendChild(child dom.Node) {
	n.v.Call("appendChild", n.own(child).v)
}

func (n *Node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	n.v.Call("insertBefore", n.own(child).v, n.own(ref).v)
}

// Remove detaches the node and drops the wrappers of its subtree that hold
// no listeners. A later lookup of the same JS node creates a new wrapper.
func (n *Node) Remove() {
	if isNothing(n.v.Get("parentNode")) {
		return
	}
	n.v.Call("remove")
	n.doc.release(n.v)
}

// own converts a dom.Node from this document back to its wrapper.
func (n *Node) own(other dom.Node) *Node {
	o, ok := other.(*Node)
	if !ok || o.doc != n.doc {
		panic(fmt.Sprintf("jsdom: node %v belongs to another document", other))
	}
	return o
}

func (n *Node) SetAttribute(name, value string) {
	n.v.Call("setAttribute", name, value)
}

func (n *Node) RemoveAttribute(name string) {
	n.v.Call("removeAttribute", name)
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if !n.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return n.v.Call("getAttribute", name).String(), true
}

// SetProperty writes a JS property. Values js.ValueOf cannot convert are
// written as their fmt representation.
func (n *Node) SetProperty(name string, value any) {
	switch v := value.(type) {
	case nil:
		n.v.Set(name, js.Null())
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, js.Value:
		n.v.Set(name, v)
	default:
		n.v.Set(name, fmt.Sprint(v))
	}
}

func (n *Node) Property(name string) any {
	v := n.v.Get(name)
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeNull, js.TypeUndefined:
		return nil
	default:
		return v
	}
}

// AddEventListener subscribes l. Adding the same listener for the same event
// twice is a no-op, as in the browser.
func (n *Node) AddEventListener(event string, l dom.Listener) {
	if n.funcs == nil {
		n.funcs = make(map[dom.Listener]map[string]js.Func)
	}
	byEvent := n.funcs[l]
	if byEvent == nil {
		byEvent = make(map[string]js.Func)
		n.funcs[l] = byEvent
	}
	if _, ok := byEvent[event]; ok {
		return
	}

	doc := n.doc
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			l.HandleEvent(&Event{doc: doc, v: args[0]})
		}
		return nil
	})
	byEvent[event] = cb
	n.v.Call("addEventListener", event, cb)
}

// RemoveEventListener unsubscribes l and releases its callback.
func (n *Node) RemoveEventListener(event string, l dom.Listener) {
	cb, ok := n.funcs[l][event]
	if !ok {
		return
	}
	n.v.Call("removeEventListener", event, cb)
	cb.Release()
	delete(n.funcs[l], event)
	if len(n.funcs[l]) == 0 {
		delete(n.funcs, l)
	}
}

func (n *Node) SetTextContent(text string) {
	n.v.Set("textContent", text)
}

func (n *Node) TextContent() string {
	v := n.v.Get("textContent")
	if isNothing(v) {
		return ""
	}
	return v.String()
}

func (n *Node) String() string {
	if outer := n.v.Get("outerHTML"); outer.Type() == js.TypeString {
		return outer.String()
	}
	return n.TextContent()
}

// Event wraps a browser event.
type Event struct {
	doc *Document
	v   js.Value
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Node { return e.doc.wrap(e.v.Get("target")) }

// Value returns the wrapped JS event.
func (e *Event) Value() js.Value { return e.v }

// PreventDefault cancels the browser's default action.
func (e *Event) PreventDefault() { e.v.Call("preventDefault") }

// StopPropagation stops the event from bubbling further.
func (e *Event) StopPropagation() { e.v.Call("stopPropagation") }

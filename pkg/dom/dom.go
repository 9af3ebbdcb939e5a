package dom

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Node
	CreateTextNode(text string) Node
}

// Node is a real node owned by a host document.
type Node interface {
	// NodeName is the lower-case tag for elements and "#text" for text nodes.
	NodeName() string
	OwnerDocument() Document

	FirstChild() Node
	NextSibling() Node
	ParentNode() Node

	// AppendChild and InsertBefore detach child from its current parent
	// first. InsertBefore with a nil ref appends.
	AppendChild(child Node)
	InsertBefore(child, ref Node)
	// Remove detaches the node from its parent. It is a no-op on a detached
	// node.
	Remove()

	SetAttribute(name, value string)
	RemoveAttribute(name string)
	GetAttribute(name string) (string, bool)

	// SetProperty writes a live property. A nil value clears it.
	SetProperty(name string, value any)
	Property(name string) any

	AddEventListener(event string, l Listener)
	RemoveEventListener(event string, l Listener)

	SetTextContent(text string)
	TextContent() string
}

// Listener receives events. Implementations must be comparable so the same
// value can later be passed to RemoveEventListener.
type Listener interface {
	HandleEvent(e Event)
}

// Event is a dispatched platform event.
type Event interface {
	Type() string
	Target() Node
}

// Children returns the child nodes of n in order.
func Children(n Node) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// ChildAt returns the i-th child of n, or nil.
func ChildAt(n Node, i int) Node {
	c := n.FirstChild()
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling()
	}
	return c
}

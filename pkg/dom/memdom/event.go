package memdom

import "github.com/vango-dev/minireact/pkg/dom"

// Event is a synthetic event delivered by Dispatch.
type Event struct {
	typ     string
	target  *Node
	current *Node
	stopped bool

	// Data carries optional payload for handlers (key name, input text, ...).
	Data any
}

var _ dom.Event = (*Event)(nil)

// NewEvent creates an event of the given type.
func NewEvent(typ string, data any) *Event {
	return &Event{typ: typ, Data: data}
}

func (e *Event) Type() string        { return e.typ }
func (e *Event) Target() dom.Node    { return e.target }
func (e *Event) CurrentTarget() *Node { return e.current }

// StopPropagation prevents the event from reaching ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Dispatch delivers e to target and then bubbles it up through its
// ancestors. It returns the number of listeners invoked.
func (d *Document) Dispatch(target *Node, e *Event) int {
	e.target = target
	invoked := 0
	for n := target; n != nil && !e.stopped; {
		e.current = n
		// Snapshot so handlers can unsubscribe during delivery.
		list := append([]dom.Listener(nil), n.listeners[e.typ]...)
		for _, l := range list {
			l.HandleEvent(e)
			invoked++
		}
		if n.n.Parent == nil {
			break
		}
		n = d.node(n.n.Parent)
	}
	return invoked
}

// Click dispatches a "click" event on target.
func (d *Document) Click(target *Node) int {
	return d.Dispatch(target, NewEvent("click", nil))
}

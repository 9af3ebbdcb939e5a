package reconcile

import (
	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// listener is the engine-owned wrapper subscribed for a handler value. It is
// a pointer so it can be removed later regardless of the handler's type.
type listener struct {
	handle func(dom.Event)
}

func (l *listener) HandleEvent(e dom.Event) { l.handle(e) }

func isHandler(v any) bool {
	switch v.(type) {
	case func(dom.Event), func(), dom.Listener:
		return true
	}
	return false
}

func newListener(v any) *listener {
	switch h := v.(type) {
	case func(dom.Event):
		return &listener{handle: h}
	case func():
		return &listener{handle: func(dom.Event) { h() }}
	case dom.Listener:
		return &listener{handle: h.HandleEvent}
	}
	return nil
}

// reconcileAttrs brings node from prev to next. Additions and updates are
// applied before removals. When className and class are both set, className
// wins.
func (p *pass) reconcileAttrs(node dom.Node, rec *record, next, prev vdom.Attrs) {
	for key, value := range next {
		if key == vdom.ChildrenKey || vdom.Shadowed(next, key) {
			continue
		}
		// A key that was shadowed in prev is written again even if unchanged.
		if old, ok := prev[key]; ok && vdom.ValuesEqual(old, value) && !vdom.Shadowed(prev, key) {
			continue
		}

		switch {
		case vdom.IsEventKey(key):
			p.unsubscribe(node, rec, key)
			if !vdom.IsFalsy(value) {
				p.subscribe(node, rec, key, value)
			}
		case vdom.IsPropertyKey(key):
			// false is a meaningful property value (unchecked); nil is not.
			if _, isBool := value.(bool); isBool || !vdom.IsFalsy(value) {
				node.SetProperty(key, value)
				p.stats.PropsSet++
			}
		default:
			if !vdom.IsFalsy(value) {
				node.SetAttribute(vdom.AttrName(key), vdom.Stringify(value))
				p.stats.AttrsSet++
			}
		}
	}

	for key, old := range prev {
		if key == vdom.ChildrenKey {
			continue
		}
		value, ok := next[key]
		if ok && (!vdom.IsFalsy(value) || vdom.ValuesEqual(old, value)) {
			continue
		}
		// A bool property was already written by the update loop.
		if _, isBool := value.(bool); ok && isBool && vdom.IsPropertyKey(key) {
			continue
		}

		switch {
		case vdom.IsEventKey(key):
			p.unsubscribe(node, rec, key)
		case vdom.IsPropertyKey(key):
			if old != nil {
				node.SetProperty(key, nil)
				p.stats.PropsSet++
			}
		default:
			if !vdom.IsFalsy(old) && !setsAttr(next, vdom.AttrName(key)) {
				node.RemoveAttribute(vdom.AttrName(key))
				p.stats.AttrsRemoved++
			}
		}
	}
}

func (p *pass) subscribe(node dom.Node, rec *record, key string, handler any) {
	l := newListener(handler)
	if l == nil {
		return
	}
	if rec.listeners == nil {
		rec.listeners = make(map[string]dom.Listener)
	}
	node.AddEventListener(vdom.EventName(key), l)
	rec.listeners[key] = l
	p.stats.ListenersAdded++
}

func (p *pass) unsubscribe(node dom.Node, rec *record, key string) {
	l, ok := rec.listeners[key]
	if !ok {
		return
	}
	node.RemoveEventListener(vdom.EventName(key), l)
	delete(rec.listeners, key)
	p.stats.ListenersRemoved++
}

// setsAttr reports whether attrs writes the attribute name through any key,
// so className and class do not undo each other.
func setsAttr(attrs vdom.Attrs, name string) bool {
	for key, value := range attrs {
		if vdom.AttrName(key) == name && !vdom.IsFalsy(value) && !vdom.IsEventKey(key) {
			return true
		}
	}
	return false
}

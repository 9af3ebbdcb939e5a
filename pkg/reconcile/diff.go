package reconcile

import (
	"context"
	"log/slog"

	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// diff makes existing match next, mounting into container when existing is
// nil. It returns the real node now standing for next.
func (p *pass) diff(next *vdom.VNode, container, existing dom.Node) dom.Node {
	if existing == nil {
		return p.mount(next, container, nil)
	}

	next = p.lookup(next)

	rec := p.engine.records[existing]
	if rec == nil || !rec.desc.SameKind(next) {
		return p.replace(next, container, existing, rec)
	}

	p.stats.Updated++
	if next.IsText() {
		if text := next.TextContent(); existing.TextContent() != text {
			existing.SetTextContent(text)
			p.stats.TextUpdated++
		}
		rec.desc = next
		return existing
	}

	p.reconcileAttrs(existing, rec, next.Attrs, rec.desc.Attrs)
	rec.desc = next
	p.diffChildren(existing, next.Children)
	return existing
}

func (p *pass) diffChildren(parent dom.Node, next []*vdom.VNode) {
	paired := p.engine.pairing.Pair(parent, next)
	for i, child := range next {
		var existing dom.Node
		if i < len(paired) {
			existing = paired[i]
		}
		p.diff(child, parent, existing)
	}
	p.prune(parent, len(next))
}

// prune removes real children of parent from the end until keep remain.
func (p *pass) prune(parent dom.Node, keep int) {
	children := dom.Children(parent)
	for i := len(children) - 1; i >= keep; i-- {
		p.remove(children[i])
	}
}

// mount creates the real subtree for v and inserts it into parent before
// ref, or appends it when ref is nil.
func (p *pass) mount(v *vdom.VNode, parent, ref dom.Node) dom.Node {
	v = p.lookup(v)
	rec := &record{desc: v}

	var node dom.Node
	if v.IsText() {
		node = p.doc.CreateTextNode(v.TextContent())
	} else {
		node = p.doc.CreateElement(v.Tag)
		p.reconcileAttrs(node, rec, v.Attrs, nil)
	}
	p.engine.records[node] = rec
	p.stats.Mounted++

	if ref != nil {
		parent.InsertBefore(node, ref)
	} else {
		parent.AppendChild(node)
	}

	for _, child := range v.Children {
		p.mount(child, node, nil)
	}
	return node
}

// replace mounts next in place of existing.
func (p *pass) replace(next *vdom.VNode, container, existing dom.Node, rec *record) dom.Node {
	if p.engine.logger.Enabled(context.Background(), slog.LevelDebug) {
		from := existing.NodeName()
		if rec != nil {
			from = rec.desc.Tag
		}
		p.engine.logger.Debug("replacing node",
			"from", from,
			"to", next.Tag,
			"tracked", rec != nil)
	}

	node := p.mount(next, container, existing)
	p.remove(existing)
	p.stats.Replaced++
	return node
}

// remove detaches node, unsubscribes the listeners the engine added in its
// subtree and forgets their records.
func (p *pass) remove(node dom.Node) {
	p.forget(node)
	node.Remove()
	p.stats.Removed++
}

func (p *pass) forget(node dom.Node) {
	if rec, ok := p.engine.records[node]; ok {
		for key := range rec.listeners {
			p.unsubscribe(node, rec, key)
		}
	}
	delete(p.engine.records, node)
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		p.forget(c)
	}
}

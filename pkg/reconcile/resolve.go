package reconcile

import (
	"github.com/vango-dev/minireact/internal/errors"
	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// pass holds the state of a single Render or Mount call.
type pass struct {
	engine *Engine
	doc    dom.Document
	stats  Stats

	// resolved maps every description reachable in this render to the
	// element or text description it stands for. Components are invoked
	// once per render.
	resolved map[*vdom.VNode]*vdom.VNode
	visiting map[*vdom.VNode]bool
}

// prepare resolves and validates the whole tree under desc.
func (p *pass) prepare(desc *vdom.VNode) error {
	p.resolved = make(map[*vdom.VNode]*vdom.VNode)
	p.visiting = make(map[*vdom.VNode]bool)
	return p.validate(desc)
}

// resolve returns the element or text description for v, invoking
// component callables until one produces a non-component.
func (p *pass) resolve(v *vdom.VNode) (*vdom.VNode, error) {
	if out, ok := p.resolved[v]; ok {
		return out, nil
	}

	cur := v
	for depth := 0; cur.IsComponent(); depth++ {
		if depth >= p.engine.maxDepth {
			return nil, errors.New("E004").
				WithDetailf("A component resolved through more than %d nested components.", p.engine.maxDepth)
		}
		if cur.Comp == nil {
			return nil, errors.New("E003").WithDetail("The component description has no callable.")
		}
		next := cur.Comp.Render()
		if next == nil {
			return nil, errors.New("E003").
				WithSuggestion("Return an element or text description, for example vdom.Text(\"\")")
		}
		cur = next
	}

	p.resolved[v] = cur
	if cur != v {
		p.resolved[cur] = cur
	}
	return cur, nil
}

func (p *pass) validate(v *vdom.VNode) error {
	node, err := p.resolve(v)
	if err != nil {
		return err
	}
	if p.visiting[node] {
		return errors.New("E004").WithDetail("A description contains itself.")
	}

	switch node.Kind {
	case vdom.KindText:
		if len(node.Children) > 0 {
			return errors.New("E009")
		}
		return nil
	case vdom.KindElement:
		if node.Tag == "" {
			return errors.New("E005")
		}
	}

	for key, value := range node.Attrs {
		if !vdom.IsEventKey(key) || vdom.IsFalsy(value) {
			continue
		}
		if !isHandler(value) {
			return errors.New("E006").
				WithDetailf("<%s> %s has a value of type %T.", node.Tag, key, value)
		}
	}

	p.visiting[node] = true
	defer delete(p.visiting, node)
	for _, child := range node.Children {
		if child == nil {
			return errors.New("E002").WithDetailf("<%s> has a nil child.", node.Tag)
		}
		if err := p.validate(child); err != nil {
			return err
		}
	}
	return nil
}

// lookup returns the resolved description for v. Only valid after prepare.
func (p *pass) lookup(v *vdom.VNode) *vdom.VNode {
	if out, ok := p.resolved[v]; ok {
		return out
	}
	return v
}

package reconcile

import (
	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// Pairing decides which existing real child each new child description is
// diffed against.
//
// Pair returns a slice of len(next). Entry i is a current child of parent, or
// nil to mount next[i] fresh; fresh nodes are appended to parent. Pair runs
// before any child of parent is touched.
type Pairing interface {
	Pair(parent dom.Node, next []*vdom.VNode) []dom.Node
}

// IndexPairing pairs the i-th description with the i-th real child.
type IndexPairing struct{}

// Pair implements Pairing.
func (IndexPairing) Pair(parent dom.Node, next []*vdom.VNode) []dom.Node {
	paired := make([]dom.Node, len(next))
	c := parent.FirstChild()
	for i := range next {
		if c == nil {
			break
		}
		paired[i] = c
		c = c.NextSibling()
	}
	return paired
}

// PairingFunc adapts a function to Pairing.
type PairingFunc func(parent dom.Node, next []*vdom.VNode) []dom.Node

// Pair implements Pairing.
func (f PairingFunc) Pair(parent dom.Node, next []*vdom.VNode) []dom.Node {
	return f(parent, next)
}

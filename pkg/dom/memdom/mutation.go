package memdom

import "fmt"

// MutationOp is the type of a recorded mutation.
type MutationOp uint8

const (
	OpInsertNode     MutationOp = iota + 1 // Node attached under a parent
	OpRemoveNode                           // Node detached from its parent
	OpSetText                              // Text content overwritten
	OpSetAttr                              // Attribute set or updated
	OpRemoveAttr                           // Attribute removed
	OpSetProperty                          // Live property written or cleared
	OpAddListener                          // Event listener subscribed
	OpRemoveListener                       // Event listener unsubscribed
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpInsertNode:
		return "InsertNode"
	case OpRemoveNode:
		return "RemoveNode"
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpSetProperty:
		return "SetProperty"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	default:
		return "Unknown"
	}
}

// Mutation is a single recorded change.
type Mutation struct {
	Op     MutationOp
	Target *Node  // Node that changed
	Parent *Node  // For InsertNode/RemoveNode
	Name   string // Attribute, property or event name
	Value  string // New value, stringified
}

// String returns a compact description such as `SetAttr <h1> class="header"`.
func (m Mutation) String() string {
	target := m.Target.label()
	switch m.Op {
	case OpInsertNode, OpRemoveNode:
		return fmt.Sprintf("%s %s parent=%s", m.Op, target, m.Parent.label())
	case OpSetText:
		return fmt.Sprintf("%s %s %q", m.Op, target, m.Value)
	case OpSetAttr, OpSetProperty:
		return fmt.Sprintf("%s %s %s=%q", m.Op, target, m.Name, m.Value)
	default:
		return fmt.Sprintf("%s %s %s", m.Op, target, m.Name)
	}
}

// Mutations returns a copy of the log.
func (d *Document) Mutations() []Mutation {
	out := make([]Mutation, len(d.mutations))
	copy(out, d.mutations)
	return out
}

// ResetMutations clears the log.
func (d *Document) ResetMutations() {
	d.mutations = d.mutations[:0]
}

// CountMutations returns how many logged mutations have the given op.
func (d *Document) CountMutations(op MutationOp) int {
	n := 0
	for _, m := range d.mutations {
		if m.Op == op {
			n++
		}
	}
	return n
}

func (d *Document) record(m Mutation) {
	d.mutations = append(d.mutations, m)
}

package vdom

import "reflect"

// Build creates a tree description.
//
// kind is a tag name, a Component or a func() *VNode. The tag TextTag builds a
// text description whose value lives under attrs[TextContentKey].
//
// children may nest slices to any depth. nil, true and false entries are
// dropped so boolean short-circuits can be used for conditional children.
// Descriptions are kept as-is, components and render funcs become component
// descriptions, and every other value is wrapped with Text.
//
// The returned Attrs is a copy of attrs with ChildrenKey set to the normalized
// children; a caller-supplied "children" entry is ignored.
func Build(kind any, attrs Attrs, children ...any) *VNode {
	normalized := normalizeChildren(children)

	node := &VNode{
		Attrs:    make(Attrs, len(attrs)+1),
		Children: normalized,
	}
	for key, value := range attrs {
		node.Attrs[key] = value
	}
	node.Attrs[ChildrenKey] = normalized

	switch k := kind.(type) {
	case string:
		node.Tag = k
		if k == TextTag {
			node.Kind = KindText
		} else {
			node.Kind = KindElement
		}
	case Component:
		node.Kind = KindComponent
		node.Comp = k
	case func() *VNode:
		node.Kind = KindComponent
		if k != nil {
			node.Comp = Func(k)
		}
	default:
		// Left tagless; the engine rejects it before touching the DOM.
		node.Kind = KindElement
	}

	return node
}

// Text creates a text description holding value.
func Text(value any) *VNode {
	return Build(TextTag, Attrs{TextContentKey: value})
}

// normalizeChildren flattens children into a fresh, non-nil slice.
func normalizeChildren(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		out = appendChild(out, child)
	}
	return out
}

func appendChild(dst []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil, bool:
		return dst
	case *VNode:
		if v == nil {
			return dst
		}
		return append(dst, v)
	case []*VNode:
		for _, c := range v {
			dst = appendChild(dst, c)
		}
		return dst
	case []any:
		for _, c := range v {
			dst = appendChild(dst, c)
		}
		return dst
	case string:
		return append(dst, Text(v))
	case []byte:
		return append(dst, Text(string(v)))
	case Component:
		if isNilValue(v) {
			return dst
		}
		return append(dst, Build(v, nil))
	case func() *VNode:
		if v == nil {
			return dst
		}
		return append(dst, Build(v, nil))
	}

	rv := reflect.ValueOf(child)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = appendChild(dst, rv.Index(i).Interface())
		}
		return dst
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return dst
		}
	}

	return append(dst, Text(child))
}

// isNilValue reports whether v is nil or an interface holding a nil pointer.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

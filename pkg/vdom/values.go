package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// Keys with special handling during attribute reconciliation.
const (
	ClassNameKey = "className"
	ClassAttr    = "class"
	ValueKey     = "value"
	CheckedKey   = "checked"
)

// IsEventKey returns true if the key is an event binding (starts with "on").
// SECURITY: Case-insensitive to catch onclick, ONCLICK, onClick, OnLoad, etc.
func IsEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// EventName returns the platform event name bound by an event key:
// "onClick" becomes "click".
func EventName(key string) string {
	return strings.ToLower(key[2:])
}

// IsPropertyKey reports whether key is written as a live node property
// rather than a generic attribute.
func IsPropertyKey(key string) bool {
	return key == ValueKey || key == CheckedKey
}

// AttrName maps an attribute key to the name written on the real node.
func AttrName(key string) string {
	if key == ClassNameKey {
		return ClassAttr
	}
	return key
}

// Shadowed reports whether the attribute written by key is taken by another
// key in attrs. A non-falsy className wins over class.
func Shadowed(attrs Attrs, key string) bool {
	return key != ClassNameKey && AttrName(key) == ClassAttr && !IsFalsy(attrs[ClassNameKey])
}

// IsFalsy reports whether an attribute value counts as absent: nil, false,
// or a nil pointer, func, map, slice or channel.
func IsFalsy(v any) bool {
	if b, ok := v.(bool); ok {
		return !b
	}
	return isNilValue(v)
}

// ValuesEqual compares two attribute values. Funcs compare by identity, so
// two distinct closures are different even when built from the same literal.
func ValuesEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Func {
		return funcIdentity(a) == funcIdentity(b)
	}
	if ta.Comparable() && ta.Kind() != reflect.Interface && ta.Kind() != reflect.Struct && ta.Kind() != reflect.Array {
		return a == b
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}

// funcIdentity returns the closure pointer held by an interface wrapping a
// func value. Func values are pointer-shaped, so the interface data word is
// the closure itself.
func funcIdentity(v any) uintptr {
	type eface struct {
		typ  unsafe.Pointer
		data unsafe.Pointer
	}
	return uintptr((*eface)(unsafe.Pointer(&v)).data)
}

// Stringify converts an attribute or text value to the string written to the
// real node.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

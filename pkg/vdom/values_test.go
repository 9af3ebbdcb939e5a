package vdom

import (
	"testing"
	"time"
)

func TestIsEventKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onClick", true},
		{"onclick", true},
		{"ONCLICK", true},
		{"OnLoad", true},
		{"on", false},
		{"one", true},
		{"class", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsEventKey(tt.key); got != tt.want {
				t.Errorf("IsEventKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEventName(t *testing.T) {
	if got := EventName("onClick"); got != "click" {
		t.Errorf("EventName(onClick) = %q", got)
	}
	if got := EventName("onMouseEnter"); got != "mouseenter" {
		t.Errorf("EventName(onMouseEnter) = %q", got)
	}
}

func TestShadowed(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		key   string
		want  bool
	}{
		{"class under className", Attrs{"className": "a", "class": "b"}, "class", true},
		{"className never shadowed", Attrs{"className": "a", "class": "b"}, "className", false},
		{"class alone", Attrs{"class": "b"}, "class", false},
		{"falsy className", Attrs{"className": nil, "class": "b"}, "class", false},
		{"other key", Attrs{"className": "a", "id": "x"}, "id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shadowed(tt.attrs, tt.key); got != tt.want {
				t.Errorf("Shadowed(%v, %q) = %v, want %v", tt.attrs, tt.key, got, tt.want)
			}
		})
	}
}

func TestAttrName(t *testing.T) {
	if AttrName("className") != "class" {
		t.Error("className should map to class")
	}
	if AttrName("data-x") != "data-x" {
		t.Error("other keys are verbatim")
	}
	if !IsPropertyKey("value") || !IsPropertyKey("checked") || IsPropertyKey("id") {
		t.Error("IsPropertyKey mismatch")
	}
}

func TestIsFalsy(t *testing.T) {
	var nilFunc func()
	var nilPtr *VNode

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"false", false, true},
		{"true", true, false},
		{"nil func", nilFunc, true},
		{"nil pointer", nilPtr, true},
		{"empty string", "", false},
		{"zero", 0, false},
		{"func", func() {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFalsy(tt.value); got != tt.want {
				t.Errorf("IsFalsy(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func makeHandler() func() {
	count := 0
	return func() { count++ }
}

func TestValuesEqual(t *testing.T) {
	f := makeHandler()
	g := makeHandler()
	node := Div()

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"string vs int", "1", 1, false},
		{"equal ints", 1, 1, true},
		{"equal floats", 1.5, 1.5, true},
		{"equal bools", true, true, true},
		{"nil nil", nil, nil, true},
		{"nil vs value", nil, "a", false},
		{"value vs nil", "a", nil, false},
		{"same func", f, f, true},
		{"distinct closures", f, g, false},
		{"same pointer", node, node, true},
		{"distinct pointers", Div(), Div(), false},
		{"equal slices", []string{"a"}, []string{"a"}, true},
		{"equal durations", time.Second, time.Second, true},
		{"different uints", uint(1), uint(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ValuesEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(7), "7"},
		{2.5, "2.5"},
		{time.Second, "1s"},
		{uint8(3), "3"},
	}

	for _, tt := range tests {
		if got := Stringify(tt.value); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

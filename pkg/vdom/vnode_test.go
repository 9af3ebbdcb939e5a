package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeSameKind(t *testing.T) {
	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{"same tag", Div(), Div("x"), true},
		{"different tag", Div(), Span(), false},
		{"text and text", Text("a"), Text("b"), true},
		{"text and element", Text("a"), Div(), false},
		{"nil", nil, Div(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameKind(tt.b); got != tt.want {
				t.Errorf("SameKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"element without handlers", Div(ClassName("test")), false},
		{"element with onClick", Button(OnClick(func() {})), true},
		{"element with nil handler", Button(OnClick(nil)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeString(t *testing.T) {
	node := Div(H1("Title"), Build(func() *VNode { return nil }, nil))
	got := node.String()
	want := `<div><h1>"Title"</h1><*vdom.FuncComponent></div>`
	if got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	var nilNode *VNode
	if nilNode.String() != "<nil>" {
		t.Errorf("nil String() = %s", nilNode.String())
	}
}

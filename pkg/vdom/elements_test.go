package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with className attribute", func(t *testing.T) {
		node := H1(ClassName("header"))
		if node.Attrs["className"] != "header" {
			t.Errorf("className = %v, want header", node.Attrs["className"])
		}
	})

	t.Run("with attribute slice and map", func(t *testing.T) {
		node := Div([]Attr{ID("main"), {}}, Attrs{"title": "t"})
		if node.Attrs["id"] != "main" {
			t.Errorf("id = %v, want main", node.Attrs["id"])
		}
		if node.Attrs["title"] != "t" {
			t.Errorf("title = %v, want t", node.Attrs["title"])
		}
		if _, ok := node.Attrs[""]; ok {
			t.Error("empty attr should be ignored")
		}
	})

	t.Run("with event handler", func(t *testing.T) {
		node := Button(OnClick(func() {}), "Click me!")
		if node.Attrs["onClick"] == nil {
			t.Error("onClick should be set")
		}
		if len(node.Children) != 1 || node.Children[0].TextContent() != "Click me!" {
			t.Errorf("children = %s", node)
		}
	})

	t.Run("children normalized like Build", func(t *testing.T) {
		node := Div(
			" nested 1",
			Div("nested 1.1"),
			false,
			If(false, Div("hidden")),
			2,
		)
		if len(node.Children) != 3 {
			t.Fatalf("Children len = %d, want 3 (%s)", len(node.Children), node)
		}
		if node.Children[2].TextContent() != "2" {
			t.Errorf("last child = %q, want 2", node.Children[2].TextContent())
		}
	})

	t.Run("custom tag", func(t *testing.T) {
		node := H("my-widget", ID("w"))
		if node.Tag != "my-widget" || node.Attrs["id"] != "w" {
			t.Errorf("H() = %q %v", node.Tag, node.Attrs)
		}
	})
}

func TestElementHelperTags(t *testing.T) {
	tests := []struct {
		node *VNode
		tag  string
	}{
		{Header(), "header"}, {Footer(), "footer"}, {Main(), "main"}, {Nav(), "nav"},
		{Section(), "section"}, {Article(), "article"}, {H2(), "h2"}, {H3(), "h3"}, {H4(), "h4"},
		{P(), "p"}, {Span(), "span"}, {Pre(), "pre"}, {Ul(), "ul"}, {Ol(), "ol"}, {Li(), "li"},
		{Hr(), "hr"}, {A(), "a"}, {Strong(), "strong"}, {Em(), "em"}, {Code(), "code"}, {Br(), "br"},
		{Form(), "form"}, {Input(), "input"}, {Textarea(), "textarea"}, {Select(), "select"},
		{Option(), "option"}, {Label(), "label"}, {Table(), "table"}, {Tr(), "tr"}, {Th(), "th"},
		{Td(), "td"}, {Img(), "img"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if tt.node.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", tt.node.Tag, tt.tag)
			}
		})
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		key   string
		value any
	}{
		{"ID", ID("x"), "id", "x"},
		{"ClassName", ClassName("a", "b"), "className", "a b"},
		{"StyleAttr", StyleAttr("color: red"), "style", "color: red"},
		{"Data", Data("id", "7"), "data-id", "7"},
		{"Role", Role("button"), "role", "button"},
		{"AriaLabel", AriaLabel("close"), "aria-label", "close"},
		{"TitleAttr", TitleAttr("tip"), "title", "tip"},
		{"Href", Href("/x"), "href", "/x"},
		{"Name", Name("n"), "name", "n"},
		{"Type", Type("checkbox"), "type", "checkbox"},
		{"Placeholder", Placeholder("..."), "placeholder", "..."},
		{"Value", Value("v"), "value", "v"},
		{"Checked", Checked(true), "checked", true},
		{"Disabled", Disabled(false), "disabled", false},
		{"Attribute", Attribute("tabindex", 1), "tabindex", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	handler := func() {}

	tests := []struct {
		name     string
		handler  EventHandler
		expected string
	}{
		{"OnClick", OnClick(handler), "onClick"},
		{"OnDblClick", OnDblClick(handler), "onDblClick"},
		{"OnMouseEnter", OnMouseEnter(handler), "onMouseEnter"},
		{"OnMouseLeave", OnMouseLeave(handler), "onMouseLeave"},
		{"OnKeyDown", OnKeyDown(handler), "onKeyDown"},
		{"OnKeyUp", OnKeyUp(handler), "onKeyUp"},
		{"OnInput", OnInput(handler), "onInput"},
		{"OnChange", OnChange(handler), "onChange"},
		{"OnSubmit", OnSubmit(handler), "onSubmit"},
		{"OnFocus", OnFocus(handler), "onFocus"},
		{"OnBlur", OnBlur(handler), "onBlur"},
		{"On", On("Scroll", handler), "onScroll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.handler.Event != tt.expected {
				t.Errorf("Event = %q, want %q", tt.handler.Event, tt.expected)
			}
			if tt.handler.Handler == nil {
				t.Error("Handler should not be nil")
			}
		})
	}
}

package memdom

import (
	"strings"
	"testing"

	"github.com/vango-dev/minireact/pkg/dom"
)

type countingListener struct {
	calls int
	last  dom.Event
}

func (l *countingListener) HandleEvent(e dom.Event) {
	l.calls++
	l.last = e
}

func TestNewDocumentHasBody(t *testing.T) {
	doc := New()
	body := doc.Body()
	if body == nil {
		t.Fatal("Body() = nil")
	}
	if body.NodeName() != "body" {
		t.Errorf("NodeName() = %q, want body", body.NodeName())
	}
	if body.FirstChild() != nil {
		t.Errorf("new body should be empty, got %s", body.InnerHTML())
	}
}

func TestNodeIdentityIsStable(t *testing.T) {
	doc := New()
	body := doc.Body()
	div := doc.CreateElement("div")
	body.AppendChild(div)

	if body.FirstChild() != div {
		t.Error("FirstChild() should return the same Node value")
	}
	if div.ParentNode() != dom.Node(body) {
		t.Error("ParentNode() should return the body wrapper")
	}
	if doc.Body() != body {
		t.Error("Body() should be stable")
	}
}

func TestInsertAndRemove(t *testing.T) {
	doc := New()
	body := doc.Body()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("i")

	body.AppendChild(a)
	body.AppendChild(c)
	body.InsertBefore(b, c)

	if got := body.InnerHTML(); got != "<a></a><b></b><i></i>" {
		t.Errorf("InnerHTML() = %s", got)
	}
	if dom.ChildAt(body, 1) != b {
		t.Error("ChildAt(1) should be b")
	}

	b.Remove()
	b.Remove() // detached: no-op
	if got := body.InnerHTML(); got != "<a></a><i></i>" {
		t.Errorf("after Remove InnerHTML() = %s", got)
	}
	if doc.CountMutations(OpRemoveNode) != 1 {
		t.Errorf("RemoveNode count = %d, want 1", doc.CountMutations(OpRemoveNode))
	}

	// Moving an attached node detaches it first.
	body.AppendChild(a)
	if got := body.InnerHTML(); got != "<i></i><a></a>" {
		t.Errorf("after move InnerHTML() = %s", got)
	}
	if n := len(dom.Children(body)); n != 2 {
		t.Errorf("Children len = %d, want 2", n)
	}
}

func TestAttributes(t *testing.T) {
	doc := New()
	el := doc.CreateElement("h1")

	el.SetAttribute("class", "header")
	el.SetAttribute("class", "title")
	el.SetAttribute("data-X", "1")

	if v, ok := el.GetAttribute("class"); !ok || v != "title" {
		t.Errorf("class = %q %v, want title", v, ok)
	}
	if v, _ := el.GetAttribute("data-x"); v != "1" {
		t.Errorf("data-x = %q, want 1 (names are lower-cased)", v)
	}

	el.RemoveAttribute("class")
	el.RemoveAttribute("missing")
	if _, ok := el.GetAttribute("class"); ok {
		t.Error("class should be removed")
	}
	if doc.CountMutations(OpRemoveAttr) != 1 {
		t.Errorf("RemoveAttr count = %d, want 1", doc.CountMutations(OpRemoveAttr))
	}
	if doc.CountMutations(OpSetAttr) != 3 {
		t.Errorf("SetAttr count = %d, want 3", doc.CountMutations(OpSetAttr))
	}
}

func TestProperties(t *testing.T) {
	doc := New()
	input := doc.CreateElement("input")

	input.SetProperty("value", "typed")
	input.SetProperty("checked", false)

	if input.Property("value") != "typed" {
		t.Errorf("value = %v", input.Property("value"))
	}
	if input.Property("checked") != false {
		t.Errorf("checked = %v, want false", input.Property("checked"))
	}
	if _, ok := input.GetAttribute("value"); ok {
		t.Error("properties must not appear as attributes")
	}

	input.SetProperty("value", nil)
	if input.Property("value") != nil {
		t.Error("nil should clear the property")
	}
}

func TestTextContent(t *testing.T) {
	doc := New()
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode("Hello "))
	strong := doc.CreateElement("strong")
	strong.AppendChild(doc.CreateTextNode("World"))
	p.AppendChild(strong)

	if got := p.TextContent(); got != "Hello World" {
		t.Errorf("TextContent() = %q", got)
	}

	text := p.FirstChild()
	if text.NodeName() != "#text" {
		t.Errorf("NodeName() = %q, want #text", text.NodeName())
	}
	text.SetTextContent("Bye ")
	if got := p.TextContent(); got != "Bye World" {
		t.Errorf("TextContent() = %q", got)
	}

	p.SetTextContent("flat")
	if got := p.(*Node).InnerHTML(); got != "flat" {
		t.Errorf("InnerHTML() = %q", got)
	}
}

func TestTextIsEscaped(t *testing.T) {
	doc := New()
	div := doc.CreateElement("div")
	div.AppendChild(doc.CreateTextNode("<script>"))
	if got := div.(*Node).OuterHTML(); got != "<div>&lt;script&gt;</div>" {
		t.Errorf("OuterHTML() = %s", got)
	}
}

func TestListeners(t *testing.T) {
	doc := New()
	body := doc.Body()
	button := doc.CreateElement("button").(*Node)
	body.AppendChild(button)

	l := &countingListener{}
	button.AddEventListener("click", l)
	button.AddEventListener("click", l)
	if button.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d, want 1", button.ListenerCount("click"))
	}

	if n := doc.Click(button); n != 1 {
		t.Errorf("Click invoked %d listeners, want 1", n)
	}
	if l.calls != 1 || l.last.Type() != "click" || l.last.Target() != dom.Node(button) {
		t.Errorf("listener calls=%d last=%v", l.calls, l.last)
	}

	button.RemoveEventListener("click", l)
	doc.Click(button)
	if l.calls != 1 {
		t.Errorf("removed listener was invoked, calls = %d", l.calls)
	}
}

func TestDispatchBubbles(t *testing.T) {
	doc := New()
	body := doc.Body()
	outer := doc.CreateElement("div").(*Node)
	inner := doc.CreateElement("span").(*Node)
	body.AppendChild(outer)
	outer.AppendChild(inner)

	onOuter := &countingListener{}
	outer.AddEventListener("click", onOuter)

	doc.Click(inner)
	if onOuter.calls != 1 {
		t.Errorf("outer calls = %d, want 1", onOuter.calls)
	}

	stopper := &stopListener{}
	inner.AddEventListener("click", stopper)
	doc.Click(inner)
	if onOuter.calls != 1 {
		t.Errorf("StopPropagation ignored, outer calls = %d", onOuter.calls)
	}
}

type stopListener struct{}

func (stopListener) HandleEvent(e dom.Event) { e.(*Event).StopPropagation() }

func TestParseAndLookup(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body><div id="root"><p>x</p></div></body></html>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root := doc.GetElementByID("root")
	if root == nil {
		t.Fatal("GetElementByID(root) = nil")
	}
	if got := root.InnerHTML(); got != "<p>x</p>" {
		t.Errorf("InnerHTML() = %s", got)
	}
	if doc.GetElementByID("missing") != nil {
		t.Error("missing id should return nil")
	}
	if !strings.Contains(doc.HTML(), `<div id="root">`) {
		t.Errorf("HTML() = %s", doc.HTML())
	}
}

func TestMutationLog(t *testing.T) {
	doc := New()
	body := doc.Body()
	h1 := doc.CreateElement("h1")
	h1.SetAttribute("class", "header")
	body.AppendChild(h1)

	muts := doc.Mutations()
	if len(muts) != 2 {
		t.Fatalf("len(Mutations) = %d, want 2: %v", len(muts), muts)
	}
	if got := muts[0].String(); got != `SetAttr <h1> class="header"` {
		t.Errorf("muts[0] = %s", got)
	}
	if got := muts[1].String(); got != "InsertNode <h1> parent=<body>" {
		t.Errorf("muts[1] = %s", got)
	}

	doc.ResetMutations()
	if len(doc.Mutations()) != 0 {
		t.Error("ResetMutations should clear the log")
	}
}

func TestMutationOpString(t *testing.T) {
	tests := []struct {
		op   MutationOp
		want string
	}{
		{OpInsertNode, "InsertNode"},
		{OpRemoveNode, "RemoveNode"},
		{OpSetText, "SetText"},
		{OpSetAttr, "SetAttr"},
		{OpRemoveAttr, "RemoveAttr"},
		{OpSetProperty, "SetProperty"},
		{OpAddListener, "AddListener"},
		{OpRemoveListener, "RemoveListener"},
		{MutationOp(0), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestForeignNodePanics(t *testing.T) {
	a, b := New(), New()
	defer func() {
		if recover() == nil {
			t.Error("appending a node from another document should panic")
		}
	}()
	a.Body().AppendChild(b.CreateElement("div"))
}

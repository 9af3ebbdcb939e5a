package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/dom/memdom"
	"github.com/vango-dev/minireact/pkg/reconcile"
	"github.com/vango-dev/minireact/pkg/render"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// Harness renders into the #root element of a fresh in-memory document.
type Harness struct {
	t      testing.TB
	Doc    *memdom.Document
	Root   *memdom.Node
	Engine *reconcile.Engine
}

// New creates a Harness with its own engine.
func New(t testing.TB, opts ...reconcile.Option) *Harness {
	t.Helper()
	doc, err := memdom.Parse(strings.NewReader(`<html><body><div id="root"></div></body></html>`))
	if err != nil {
		t.Fatalf("vtest: parse document: %v", err)
	}
	return &Harness{
		t:      t,
		Doc:    doc,
		Root:   doc.GetElementByID("root"),
		Engine: reconcile.New(opts...),
	}
}

// Render renders desc into Root and fails the test on error. The mutation
// log is reset first, so Mutations reports only this render.
func (h *Harness) Render(desc *vdom.VNode) reconcile.Stats {
	h.t.Helper()
	h.Doc.ResetMutations()
	if err := h.Engine.Render(desc, h.Root); err != nil {
		h.t.Fatalf("vtest: render: %v", err)
	}
	return h.Engine.LastStats()
}

// HTML returns the markup inside Root.
func (h *Harness) HTML() string {
	return h.Root.InnerHTML()
}

// Mutations returns the host writes of the last Render.
func (h *Harness) Mutations() []memdom.Mutation {
	return h.Doc.Mutations()
}

// ExpectHTML asserts the markup inside Root.
func (h *Harness) ExpectHTML(want string) {
	h.t.Helper()
	if got := h.HTML(); got != want {
		h.t.Errorf("rendered HTML:\n got %s\nwant %s", got, want)
	}
}

// ExpectNoMutations asserts the last Render left the document untouched.
func (h *Harness) ExpectNoMutations() {
	h.t.Helper()
	if m := h.Mutations(); len(m) > 0 {
		h.t.Errorf("expected no mutations, got %d, first: %s", len(m), m[0])
	}
}

// Find returns the first element under Root with the given tag, or nil.
func (h *Harness) Find(tag string) *memdom.Node {
	var walk func(n dom.Node) *memdom.Node
	walk = func(n dom.Node) *memdom.Node {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.NodeName() == tag {
				return c.(*memdom.Node)
			}
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(h.Root)
}

// Click dispatches a click on the first element with the given tag and
// returns how many listeners ran.
func (h *Harness) Click(tag string) int {
	h.t.Helper()
	n := h.Find(tag)
	if n == nil {
		h.t.Fatalf("vtest: no <%s> to click in %s", tag, truncate(h.HTML(), 200))
	}
	return h.Doc.Click(n)
}

// RenderToString serializes desc, or returns "" if it cannot be rendered.
func RenderToString(desc *vdom.VNode) string {
	html, err := render.String(desc)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, desc *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(desc)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, desc *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(desc)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t *testing.T, desc *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(desc)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

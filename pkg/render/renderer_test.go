package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/minireact/internal/errors"
	"github.com/vango-dev/minireact/pkg/vdom"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		desc *vdom.VNode
		want string
	}{
		{
			name: "text",
			desc: vdom.Text("hello"),
			want: "hello",
		},
		{
			name: "escaped text",
			desc: vdom.Text(`<b>"x" & 'y'</b>`),
			want: "&lt;b&gt;&#34;x&#34; &amp; &#39;y&#39;&lt;/b&gt;",
		},
		{
			name: "element with children",
			desc: vdom.Build("div", nil, "a", vdom.Build("span", nil, 1)),
			want: "<div>a<span>1</span></div>",
		},
		{
			name: "className becomes class",
			desc: vdom.Build("h1", vdom.Attrs{"className": "header"}, "Hi"),
			want: `<h1 class="header">Hi</h1>`,
		},
		{
			name: "className wins over class",
			desc: vdom.Build("p", vdom.Attrs{"class": "plain", "className": "rich"}),
			want: `<p class="rich"></p>`,
		},
		{
			name: "sorted attributes",
			desc: vdom.Build("a", vdom.Attrs{"title": "t", "href": "/x", "id": "l"}),
			want: `<a href="/x" id="l" title="t"></a>`,
		},
		{
			name: "falsy and events skipped",
			desc: vdom.Build("button", vdom.Attrs{
				"onClick":  func() {},
				"disabled": false,
				"title":    nil,
				"type":     "button",
			}, "Go"),
			want: `<button type="button">Go</button>`,
		},
		{
			name: "value and checked",
			desc: vdom.Build("input", vdom.Attrs{"type": "checkbox", "value": "on", "checked": true}),
			want: `<input checked type="checkbox" value="on"/>`,
		},
		{
			name: "unchecked",
			desc: vdom.Build("input", vdom.Attrs{"checked": false}),
			want: `<input/>`,
		},
		{
			name: "escaped attribute",
			desc: vdom.Build("div", vdom.Attrs{"title": `a"b`}),
			want: `<div title="a&#34;b"></div>`,
		},
		{
			name: "component",
			desc: vdom.Build(vdom.Func(func() *vdom.VNode {
				return vdom.Build("p", nil, "from component")
			}), nil),
			want: "<p>from component</p>",
		},
		{
			name: "void element",
			desc: vdom.Build("div", nil, vdom.Build("br", nil), "x"),
			want: "<div><br/>x</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.desc)
			if err != nil {
				t.Fatalf("String() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	r := New(Config{Pretty: true})
	got, err := r.String(vdom.Build("ul", nil, vdom.Build("li", nil, "one")))
	if err != nil {
		t.Fatal(err)
	}
	want := "<ul>\n  <li>\n    one\n  </li>\n</ul>\n"
	if got != want {
		t.Errorf("pretty output =\n%s\nwant\n%s", got, want)
	}
}

func TestErrors(t *testing.T) {
	var loop vdom.Component
	loop = vdom.Func(func() *vdom.VNode { return vdom.Build(loop, nil) })

	tests := []struct {
		name string
		desc *vdom.VNode
		code string
	}{
		{"nil tree", nil, "E002"},
		{"nil component result", vdom.Build(vdom.Func(func() *vdom.VNode { return nil }), nil), "E003"},
		{"component loop", vdom.Build(loop, nil), "E004"},
		{"missing tag", &vdom.VNode{Kind: vdom.KindElement}, "E005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.WriteString("before")
			err := New(Config{}).Write(&buf, tt.desc)
			if code := errors.CodeOf(err); code != tt.code {
				t.Fatalf("Write() error = %v, want %s", err, tt.code)
			}
			if buf.String() != "before" {
				t.Errorf("failed render wrote %q", strings.TrimPrefix(buf.String(), "before"))
			}
		})
	}
}

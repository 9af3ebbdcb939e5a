package render

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/minireact/internal/errors"
	"github.com/vango-dev/minireact/pkg/reconcile"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// Config configures a Renderer.
type Config struct {
	// Pretty puts each element on its own line, indented by depth.
	Pretty bool

	// Indent is the string used for each level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// MaxComponentDepth bounds component chains as the engine does.
	MaxComponentDepth int
}

// Renderer writes tree descriptions as HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.MaxComponentDepth <= 0 {
		config.MaxComponentDepth = reconcile.DefaultMaxComponentDepth
	}
	return &Renderer{config: config}
}

// String renders desc with the default configuration.
func String(desc *vdom.VNode) (string, error) {
	return New(Config{}).String(desc)
}

// String renders desc to a string.
func (r *Renderer) String(desc *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf, desc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders desc to w. Nothing is written if desc is invalid.
func (r *Renderer) Write(w io.Writer, desc *vdom.VNode) error {
	if desc == nil {
		return errors.New("E002")
	}
	// A failing component deep in the tree leaves w untouched.
	var buf bytes.Buffer
	if err := r.node(&buf, desc, 0); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) resolve(v *vdom.VNode) (*vdom.VNode, error) {
	for depth := 0; v.IsComponent(); depth++ {
		if depth >= r.config.MaxComponentDepth {
			return nil, errors.New("E004").
				WithDetailf("A component resolved through more than %d nested components.", r.config.MaxComponentDepth)
		}
		if v.Comp == nil {
			return nil, errors.New("E003").WithDetail("The component description has no callable.")
		}
		if v = v.Comp.Render(); v == nil {
			return nil, errors.New("E003")
		}
	}
	return v, nil
}

func (r *Renderer) node(w *bytes.Buffer, v *vdom.VNode, depth int) error {
	v, err := r.resolve(v)
	if err != nil {
		return err
	}

	if v.IsText() {
		if len(v.Children) > 0 {
			return errors.New("E009")
		}
		r.indent(w, depth)
		w.WriteString(html.EscapeString(v.TextContent()))
		r.newline(w)
		return nil
	}
	if v.Tag == "" {
		return errors.New("E005")
	}

	r.indent(w, depth)
	w.WriteByte('<')
	w.WriteString(v.Tag)
	r.attributes(w, v.Attrs)

	if isVoidElement(v.Tag) {
		w.WriteString("/>")
		r.newline(w)
		return nil
	}
	w.WriteByte('>')
	if len(v.Children) > 0 {
		r.newline(w)
	}

	for _, child := range v.Children {
		if err := r.node(w, child, depth+1); err != nil {
			return err
		}
	}

	if len(v.Children) > 0 {
		r.indent(w, depth)
	}
	w.WriteString("</")
	w.WriteString(v.Tag)
	w.WriteByte('>')
	r.newline(w)
	return nil
}

// attributes writes the attributes a mount would set, sorted by name.
func (r *Renderer) attributes(w *bytes.Buffer, attrs vdom.Attrs) {
	written := make(map[string]string, len(attrs))
	for key, value := range attrs {
		switch {
		case key == vdom.ChildrenKey, vdom.IsEventKey(key), vdom.IsFalsy(value), vdom.Shadowed(attrs, key):
			continue
		case key == vdom.CheckedKey:
			written[key] = ""
		default:
			written[strings.ToLower(vdom.AttrName(key))] = vdom.Stringify(value)
		}
	}

	names := make([]string, 0, len(written))
	for name := range written {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w.WriteByte(' ')
		w.WriteString(name)
		if name == vdom.CheckedKey {
			continue
		}
		w.WriteString(`="`)
		w.WriteString(html.EscapeString(written[name]))
		w.WriteByte('"')
	}
}

func (r *Renderer) indent(w *bytes.Buffer, depth int) {
	if !r.config.Pretty {
		return
	}
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}

func (r *Renderer) newline(w *bytes.Buffer) {
	if r.config.Pretty {
		w.WriteByte('\n')
	}
}

package memdom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/minireact/pkg/dom"
)

// Document is an in-memory HTML document. It is not safe for concurrent use.
type Document struct {
	root      *html.Node
	nodes     map[*html.Node]*Node
	mutations []Mutation
}

var _ dom.Document = (*Document)(nil)

// New returns an empty document with <html>, <head> and <body>.
func New() *Document {
	d, err := Parse(strings.NewReader(""))
	if err != nil {
		// html.Parse only fails on reader errors.
		panic(fmt.Sprintf("memdom: parse empty document: %v", err))
	}
	return d
}

// Parse builds a document from HTML markup.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("memdom: parse: %w", err)
	}
	return &Document{
		root:  root,
		nodes: make(map[*html.Node]*Node),
	}, nil
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Node {
	tag = strings.ToLower(tag)
	return d.node(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return d.node(&html.Node{Type: html.TextNode, Data: text})
}

// Body returns the <body> element.
func (d *Document) Body() *Node {
	return d.find(func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	return d.find(func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := attr(n, "id")
		return ok && v == id
	})
}

// HTML serializes the whole document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) find(match func(*html.Node) bool) *Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if match(n) {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	if n := walk(d.root); n != nil {
		return d.node(n)
	}
	return nil
}

// node returns the unique wrapper for n.
func (d *Document) node(n *html.Node) *Node {
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}

// wrap is node with a nil-safe dom.Node result.
func (d *Document) wrap(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	return d.node(n)
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

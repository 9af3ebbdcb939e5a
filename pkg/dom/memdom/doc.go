// Package memdom is an in-memory dom.Document backed by golang.org/x/net/html.
//
// Element and text nodes are real *html.Node values, so a document can be
// parsed from markup and serialized back with html.Render. Live properties
// and event listeners, which have no markup form, are kept on the wrapper
// nodes.
//
// Every tree-visible change is appended to a mutation log, which tests use to
// assert exactly what a render touched:
//
//	doc := memdom.New()
//	root := doc.Body()
//	engine.Render(tree, root)
//	doc.ResetMutations()
//	engine.Render(tree, root)
//	if n := len(doc.Mutations()); n != 0 { ... }
package memdom

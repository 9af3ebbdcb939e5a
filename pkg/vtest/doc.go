// Package vtest provides testing helpers for minireact trees.
//
// A Harness renders descriptions into an in-memory document so tests can
// assert on the resulting markup, the host mutations a render caused, and
// event handlers:
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Render(Counter(0))
//	    h.ExpectHTML(`<div><button>+</button>0</div>`)
//
//	    h.Render(Counter(0))
//	    h.ExpectNoMutations()
//	}
//
// # Render Assertions
//
// Assert on serialized descriptions without a document:
//
//	vtest.ExpectContains(t, Header(), "Hello")
//	vtest.ExpectAttribute(t, Header(), "class", "header")
package vtest

// Package dom defines the host capabilities the reconciler needs from a
// document: creating nodes, walking siblings, editing attributes and
// properties, and subscribing event listeners.
//
// Two hosts ship with the module:
//
//   - memdom: an in-memory document with a mutation log, used by tests, the
//     CLI demo and anything that wants HTML output without a browser.
//   - jsdom: the browser document, reached through syscall/js when compiled
//     for js/wasm.
//
// Implementations must return the same Node value every time they hand out
// the same platform node, and Node values must be comparable. The reconciler
// keys its per-node bookkeeping on Node identity.
package dom

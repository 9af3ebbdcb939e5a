// Package reconcile mounts tree descriptions into a host document and keeps
// the real tree in sync with later descriptions.
//
// An Engine owns the bookkeeping for every node it created: the description
// that last reconciled the node and the listeners it subscribed. Render runs
// in two phases. The first resolves every component and validates the whole
// description without touching the host; any problem is returned as an
// *errors.Error and the real tree is left as it was. The second walks the
// description against the real tree:
//
//   - no real node at a position: mount a new subtree
//   - a component: diff what it produces against the same node
//   - the real node was built from the same kind (tag, or text): update it in
//     place, diff children paired by the engine's Pairing, then remove
//     surplus children from the end
//   - anything else: mount the new subtree before the real node and remove it
//
// Children are paired by index. There are no keys, so inserting at the front
// of a list rewrites every following sibling.
//
// An Engine is not safe for concurrent use and rejects re-entrant renders.
package reconcile

// Package dom defines the host-document capability surface the tab controller
// operates against, plus pure helpers for whitespace-separated class lists.
//
// Core abstractions:
//   - Document: node lookup by selector
//   - Node: class-attribute read/write, descendant lookup by class, click subscription
//   - ListenerHandle: opaque token identifying one registered click listener
//
// The controller never assumes a concrete document implementation; tests and the
// demo binary use the in-memory one in internal/memdom.
package dom

// ListenerHandle identifies a single registered click listener so it can be
// removed later without disturbing listeners registered by anyone else.
type ListenerHandle string

// Node is one element of the host document tree.
type Node interface {
	// ID returns the node's identifier attribute, or "" if it has none.
	ID() string

	// ClassAttr returns the node's class attribute: zero or more names
	// separated by whitespace.
	ClassAttr() string

	// SetClassAttr replaces the node's class attribute.
	SetClassAttr(attr string)

	// DescendantsByClass returns the node's descendants (not the node itself)
	// whose class list contains name, in document order. An empty name matches
	// nothing.
	DescendantsByClass(name string) []Node

	// AddClickListener registers fn to run when the node is clicked and
	// returns a handle for removing exactly that registration.
	AddClickListener(fn func()) ListenerHandle

	// RemoveClickListener removes the listener registered under h.
	// Unknown handles are ignored.
	RemoveClickListener(h ListenerHandle)
}

// Document is the root capability: resolve a selector to the first matching
// node. A selector that matches nothing yields (nil, nil); only a malformed
// selector is an error.
type Document interface {
	QuerySelector(sel string) (Node, error)
}

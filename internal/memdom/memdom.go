// Package memdom is an in-memory implementation of the dom capability surface.
// It backs the controller tests and the demo binary; there is no real browser
// anywhere in this module.
package memdom

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tabctl/internal/dom"
)

// listener pairs a handle with its callback; kept in a slice so dispatch order
// matches registration order.
type listener struct {
	handle dom.ListenerHandle
	fn     func()
}

// Element is a node in the in-memory tree. Identity is pointer identity: two
// elements sharing a class are still two elements.
type Element struct {
	Tag  string
	Text string

	id        string
	classAttr string
	parent    *Element
	children  []*Element
	listeners []listener
}

var _ dom.Node = (*Element)(nil)

// NewElement creates a detached element.
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{Tag: tag, id: id, classAttr: strings.Join(classes, " ")}
}

// Append attaches children to e, in order, and returns e for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// ID implements dom.Node.
func (e *Element) ID() string { return e.id }

// ClassAttr implements dom.Node.
func (e *Element) ClassAttr() string { return e.classAttr }

// SetClassAttr implements dom.Node.
func (e *Element) SetClassAttr(attr string) { e.classAttr = attr }

// DescendantsByClass implements dom.Node: depth-first document order,
// excluding e itself. An empty name matches nothing.
func (e *Element) DescendantsByClass(name string) []dom.Node {
	if name == "" {
		return nil
	}
	var out []dom.Node
	for _, c := range e.children {
		if dom.HasClass(c.classAttr, name) {
			out = append(out, c)
		}
		out = append(out, c.DescendantsByClass(name)...)
	}
	return out
}

// AddClickListener implements dom.Node.
func (e *Element) AddClickListener(fn func()) dom.ListenerHandle {
	h := dom.ListenerHandle(uuid.NewString())
	e.listeners = append(e.listeners, listener{handle: h, fn: fn})
	return h
}

// RemoveClickListener implements dom.Node. Unknown handles are ignored.
func (e *Element) RemoveClickListener(h dom.ListenerHandle) {
	out := e.listeners[:0]
	for _, l := range e.listeners {
		if l.handle == h {
			continue
		}
		out = append(out, l)
	}
	e.listeners = out
}

// ListenerCount returns the number of registered click listeners. Used by
// tests to prove rebinding does not accumulate handlers.
func (e *Element) ListenerCount() int { return len(e.listeners) }

// Document holds a tree root and resolves selectors against it.
type Document struct {
	Root *Element
}

var _ dom.Document = (*Document)(nil)

// NewDocument wraps root in a Document.
func NewDocument(root *Element) *Document { return &Document{Root: root} }

// QuerySelector resolves simple selectors: "#id", ".class", or a bare tag
// name. The first depth-first match (including the root) wins; no match is
// (nil, nil). Combinators and compound selectors are malformed here.
func (d *Document) QuerySelector(sel string) (dom.Node, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil, fmt.Errorf("memdom: empty selector")
	}
	if strings.ContainsAny(sel, " >+~[],:") {
		return nil, fmt.Errorf("memdom: unsupported selector %q", sel)
	}

	var match func(*Element) bool
	switch {
	case strings.HasPrefix(sel, "#"):
		id := sel[1:]
		match = func(e *Element) bool { return e.id == id }
	case strings.HasPrefix(sel, "."):
		class := sel[1:]
		match = func(e *Element) bool { return dom.HasClass(e.classAttr, class) }
	default:
		match = func(e *Element) bool { return e.Tag == sel }
	}
	if d.Root == nil {
		return nil, nil
	}
	if found := find(d.Root, match); found != nil {
		return found, nil
	}
	return nil, nil
}

func find(e *Element, match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, c := range e.children {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// DispatchClick synchronously invokes n's click listeners in registration
// order. This is the host event loop of the in-memory world: everything runs
// to completion before DispatchClick returns.
func DispatchClick(n dom.Node) {
	e, ok := n.(*Element)
	if !ok || e == nil {
		return
	}
	// Copy so a listener rebinding during dispatch doesn't shift the slice
	// under us.
	ls := make([]listener, len(e.listeners))
	copy(ls, e.listeners)
	for _, l := range ls {
		l.fn()
	}
}

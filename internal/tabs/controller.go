package tabs

import (
	"log"
	"strings"

	"tabctl/internal/dom"
)

// Tab is one discovered header with the panels it controls. Tabs are derived
// data: a rescan rebuilds the whole list from the document.
type Tab struct {
	Header dom.Node
	ID     string
	Linked []dom.Node // deduped by node identity, first-seen order
}

// boundListener remembers which node we attached which handle to, so a rebind
// removes exactly our listeners and nothing else.
type boundListener struct {
	node   dom.Node
	handle dom.ListenerHandle
}

// Controller owns the activation state of one tab group.
//
// Invariant: whenever the tab list is non-empty, exactly one header carries
// the active class (the rest carry inactive), and only the active tab's
// linked panels carry the show class (the rest carry hide).
type Controller struct {
	doc  dom.Document
	root dom.Node
	opts Options

	tabs          []Tab
	current       int // -1 while no tab is active
	previous      int
	handlersBound bool
	bound         []boundListener
}

// New resolves rootSelector against doc, marks the container, scans for tabs,
// and activates the configured default index (clamped to 0 when out of range).
//
// A selector the document rejects is an *InvalidSelectorError. A selector
// that matches nothing is not an error: the controller holds zero tabs and
// activation requests fail out-of-range until a rescan finds something.
func New(doc dom.Document, rootSelector string, opts *Options) (*Controller, error) {
	merged := mergeOptions(opts)
	c := &Controller{doc: doc, opts: merged, current: -1, previous: -1}

	if strings.TrimSpace(rootSelector) == "" {
		return nil, &InvalidSelectorError{Selector: rootSelector, Reason: "empty selector"}
	}
	root, err := doc.QuerySelector(rootSelector)
	if err != nil {
		return nil, &InvalidSelectorError{Selector: rootSelector, Reason: err.Error()}
	}
	if root == nil {
		log.Printf("tabs.New: selector %q matched nothing, controller holds zero tabs", rootSelector)
		return c, nil
	}
	c.root = root
	root.SetClassAttr(dom.AddClass(root.ClassAttr(), merged.ClassNames.Container))

	c.Rescan()
	if len(c.tabs) > 0 {
		idx := merged.Defaults.ActiveTab
		if idx < 0 || idx >= len(c.tabs) {
			idx = 0
		}
		if err := c.Toggle(idx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Rescan rebuilds the tab list from the document: it unbinds any click
// handlers this controller attached, collects document-order descendants
// carrying the tab class as headers, links each header to the container
// descendants whose class list contains the header's ID, and rebinds.
// Safe to call repeatedly and after external tree mutation.
func (c *Controller) Rescan() {
	c.unbindHandlers()
	c.tabs = nil
	if c.root == nil {
		return
	}
	for _, header := range c.root.DescendantsByClass(c.opts.ClassNames.Tab) {
		tab := Tab{Header: header, ID: header.ID()}
		seen := make(map[dom.Node]bool)
		for _, panel := range c.root.DescendantsByClass(tab.ID) {
			if seen[panel] {
				continue
			}
			seen[panel] = true
			tab.Linked = append(tab.Linked, panel)
		}
		c.tabs = append(c.tabs, tab)
	}
	c.bindHandlers()
}

// Toggle activates the tab at index: every header is first marked inactive
// and every linked panel hidden, then the chosen header is marked active and
// its panels visible. Exactly one tab ends active. Idempotent for a valid
// index.
func (c *Controller) Toggle(index int) error {
	if index < 0 || index >= len(c.tabs) {
		return &InvalidIndexError{Kind: IndexOutOfRange, Value: index, Count: len(c.tabs)}
	}
	c.previous = c.current
	c.current = index

	cn := c.opts.ClassNames
	for _, tab := range c.tabs {
		tab.Header.SetClassAttr(dom.ReplaceClass(tab.Header.ClassAttr(), []string{cn.Active}, []string{cn.Inactive}))
		for _, panel := range tab.Linked {
			panel.SetClassAttr(dom.ReplaceClass(panel.ClassAttr(), []string{cn.Show}, []string{cn.Hide}))
		}
	}

	active := c.tabs[index]
	active.Header.SetClassAttr(dom.ReplaceClass(active.Header.ClassAttr(), []string{cn.Inactive}, []string{cn.Active}))
	for _, panel := range active.Linked {
		panel.SetClassAttr(dom.ReplaceClass(panel.ClassAttr(), []string{cn.Hide}, []string{cn.Show}))
	}
	return nil
}

// ToggleValue activates a tab from a loosely-typed index: config files and
// key events deliver strings and floats, not ints. Input that cannot be
// parsed as an integer fails with kind IndexNonNumeric; a parsed integer out
// of range fails like Toggle.
func (c *Controller) ToggleValue(v any) error {
	index, ok := parseTabIndex(v)
	if !ok {
		return &InvalidIndexError{Kind: IndexNonNumeric, Value: v, Count: len(c.tabs)}
	}
	if err := c.Toggle(index); err != nil {
		// Report the caller's original value, not the parsed int.
		if oor, isRange := err.(*InvalidIndexError); isRange {
			oor.Value = v
		}
		return err
	}
	return nil
}

// bindHandlers attaches one click listener per header; each captures its
// index at bind time. No-op when handlers are already bound.
func (c *Controller) bindHandlers() {
	if c.handlersBound || len(c.tabs) == 0 {
		return
	}
	for i, tab := range c.tabs {
		index := i
		handle := tab.Header.AddClickListener(func() {
			if err := c.Toggle(index); err != nil {
				log.Printf("tabs.Controller: click on tab %d: %v", index, err)
			}
		})
		c.bound = append(c.bound, boundListener{node: tab.Header, handle: handle})
	}
	c.handlersBound = true
}

// unbindHandlers removes exactly the listeners this controller attached.
// Idempotent.
func (c *Controller) unbindHandlers() {
	for _, b := range c.bound {
		b.node.RemoveClickListener(b.handle)
	}
	c.bound = nil
	c.handlersBound = false
}

// Tabs returns the discovered tabs in document order.
func (c *Controller) Tabs() []Tab { return c.tabs }

// Len returns the number of discovered tabs.
func (c *Controller) Len() int { return len(c.tabs) }

// Current returns the active tab index, or -1 when no tab is active.
func (c *Controller) Current() int { return c.current }

// Previous returns the index active before the last transition, or -1.
func (c *Controller) Previous() int { return c.previous }

// HandlersBound reports whether click listeners are currently attached.
func (c *Controller) HandlersBound() bool { return c.handlersBound }

// Options returns the merged configuration this controller runs with.
func (c *Controller) Options() Options { return c.opts }

// Root returns the resolved container node, or nil if the selector matched
// nothing.
func (c *Controller) Root() dom.Node { return c.root }

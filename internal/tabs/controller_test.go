package tabs

import (
	"errors"
	"strings"
	"testing"

	"tabctl/internal/dom"
	"tabctl/internal/memdom"
)

// fixture builds the canonical tree: three headers (one/two/three) and four
// panels classed one, two, three, two — so tab "two" controls two distinct
// panels sharing a class.
func fixture() *memdom.Document {
	container := memdom.NewElement("div", "demo").Append(
		memdom.NewElement("span", "one", "tab"),
		memdom.NewElement("span", "two", "tab"),
		memdom.NewElement("span", "three", "tab"),
		memdom.NewElement("div", "", "one"),
		memdom.NewElement("div", "", "two"),
		memdom.NewElement("div", "", "three"),
		memdom.NewElement("div", "", "two"),
	)
	return memdom.NewDocument(memdom.NewElement("body", "").Append(container))
}

// assertPartition checks the core invariant: exactly tab want is
// active/visible, everything else inactive/hidden.
func assertPartition(t *testing.T, c *Controller, want int) {
	t.Helper()
	cn := c.Options().ClassNames
	for i, tab := range c.Tabs() {
		attr := tab.Header.ClassAttr()
		if i == want {
			if !dom.HasClass(attr, cn.Active) || dom.HasClass(attr, cn.Inactive) {
				t.Errorf("tab %d: header classes %q, want active without inactive", i, attr)
			}
		} else {
			if dom.HasClass(attr, cn.Active) || !dom.HasClass(attr, cn.Inactive) {
				t.Errorf("tab %d: header classes %q, want inactive without active", i, attr)
			}
		}
		for j, panel := range tab.Linked {
			pattr := panel.ClassAttr()
			if i == want {
				if !dom.HasClass(pattr, cn.Show) || dom.HasClass(pattr, cn.Hide) {
					t.Errorf("tab %d panel %d: classes %q, want visible without hidden", i, j, pattr)
				}
			} else {
				if !dom.HasClass(pattr, cn.Hide) || dom.HasClass(pattr, cn.Show) {
					t.Errorf("tab %d panel %d: classes %q, want hidden without visible", i, j, pattr)
				}
			}
		}
	}
	if c.Current() != want {
		t.Errorf("Current() = %d, want %d", c.Current(), want)
	}
}

func TestNewActivatesDefault(t *testing.T) {
	doc := fixture()
	c, err := New(doc, "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if !dom.HasClass(c.Root().ClassAttr(), "tabs-container") {
		t.Errorf("container class missing from root: %q", c.Root().ClassAttr())
	}
	if !c.HandlersBound() {
		t.Error("expected handlers bound after construction")
	}
	assertPartition(t, c, 0)
}

func TestNewClampsDefaultIndex(t *testing.T) {
	for _, def := range []int{99, -5} {
		c, err := New(fixture(), "#demo", &Options{Defaults: Defaults{ActiveTab: def}})
		if err != nil {
			t.Fatalf("New(default=%d): %v", def, err)
		}
		assertPartition(t, c, 0)
	}

	c, err := New(fixture(), "#demo", &Options{Defaults: Defaults{ActiveTab: 2}})
	if err != nil {
		t.Fatalf("New(default=2): %v", err)
	}
	assertPartition(t, c, 2)
}

func TestToggle(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Toggle(1); err != nil {
		t.Fatalf("Toggle(1): %v", err)
	}
	assertPartition(t, c, 1)
	if c.Previous() != 0 {
		t.Errorf("Previous() = %d, want 0", c.Previous())
	}

	if len(c.Tabs()[1].Linked) != 2 {
		t.Errorf("tab two linked %d panels, want 2 (distinct panels sharing a class)", len(c.Tabs()[1].Linked))
	}
}

func TestToggleIdempotent(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Toggle(1); err != nil {
		t.Fatalf("Toggle(1): %v", err)
	}
	snap := snapshot(c)
	if err := c.Toggle(1); err != nil {
		t.Fatalf("Toggle(1) again: %v", err)
	}
	if got := snapshot(c); got != snap {
		t.Errorf("second Toggle(1) changed state:\n got %q\nwant %q", got, snap)
	}
}

// snapshot flattens every header and panel class attribute for comparison.
func snapshot(c *Controller) string {
	var b strings.Builder
	for _, tab := range c.Tabs() {
		b.WriteString(tab.Header.ClassAttr())
		b.WriteByte('|')
		for _, p := range tab.Linked {
			b.WriteString(p.ClassAttr())
			b.WriteByte(';')
		}
	}
	return b.String()
}

func TestToggleRejectsBadIndexes(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, idx := range []int{-1, 3, 100} {
		err := c.Toggle(idx)
		var iie *InvalidIndexError
		if !errors.As(err, &iie) || iie.Kind != IndexOutOfRange {
			t.Errorf("Toggle(%d) = %v, want out-of-range InvalidIndexError", idx, err)
		}
	}

	err = c.ToggleValue("abc")
	var iie *InvalidIndexError
	if !errors.As(err, &iie) || iie.Kind != IndexNonNumeric {
		t.Errorf("ToggleValue(\"abc\") = %v, want non-numeric InvalidIndexError", err)
	}
	if iie != nil && iie.Value != "abc" {
		t.Errorf("error payload Value = %v, want the offending input", iie.Value)
	}

	// State is untouched by rejected activations.
	assertPartition(t, c, 0)
}

func TestToggleValueCoercion(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		in   any
		want int
	}{
		{1, 1},
		{"2", 2},
		{" 1 ", 1},
		{float64(2), 2},
		{int64(0), 0},
	}
	for _, tt := range tests {
		if err := c.ToggleValue(tt.in); err != nil {
			t.Errorf("ToggleValue(%v): %v", tt.in, err)
			continue
		}
		if c.Current() != tt.want {
			t.Errorf("ToggleValue(%v): Current() = %d, want %d", tt.in, c.Current(), tt.want)
		}
	}

	err = c.ToggleValue("9")
	var iie *InvalidIndexError
	if !errors.As(err, &iie) || iie.Kind != IndexOutOfRange || iie.Value != "9" {
		t.Errorf("ToggleValue(\"9\") = %v, want out-of-range carrying original input", err)
	}
}

func TestEmptyContainer(t *testing.T) {
	container := memdom.NewElement("div", "demo").Append(
		memdom.NewElement("div", "", "content"),
	)
	doc := memdom.NewDocument(memdom.NewElement("body", "").Append(container))

	c, err := New(doc, "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	if c.Current() != -1 {
		t.Errorf("Current() = %d, want -1", c.Current())
	}
	for _, idx := range []int{0, -1, 1} {
		err := c.Toggle(idx)
		var iie *InvalidIndexError
		if !errors.As(err, &iie) || iie.Kind != IndexOutOfRange {
			t.Errorf("Toggle(%d) on empty set = %v, want out-of-range", idx, err)
		}
	}
}

func TestMissingContainerDegrades(t *testing.T) {
	c, err := New(fixture(), "#absent", nil)
	if err != nil {
		t.Fatalf("New with absent container: %v", err)
	}
	if c.Len() != 0 || c.Root() != nil {
		t.Errorf("expected zero tabs and nil root, got %d tabs", c.Len())
	}
	c.Rescan() // no-op, no panic
	if c.Len() != 0 {
		t.Errorf("Rescan on nil root found %d tabs", c.Len())
	}
}

func TestInvalidSelector(t *testing.T) {
	for _, sel := range []string{"", "  ", "div > span"} {
		_, err := New(fixture(), sel, nil)
		var ise *InvalidSelectorError
		if !errors.As(err, &ise) {
			t.Errorf("New(%q) = %v, want InvalidSelectorError", sel, err)
		}
	}
}

func TestClickActivates(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	memdom.DispatchClick(c.Tabs()[2].Header)
	assertPartition(t, c, 2)
	if c.Previous() != 0 {
		t.Errorf("Previous() = %d, want 0", c.Previous())
	}
}

func TestRescanDoesNotAccumulateHandlers(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Rescan()
	c.Rescan()

	for i, tab := range c.Tabs() {
		if n := tab.Header.(*memdom.Element).ListenerCount(); n != 1 {
			t.Errorf("tab %d header has %d listeners after rescans, want 1", i, n)
		}
	}

	// One click still means one transition.
	memdom.DispatchClick(c.Tabs()[1].Header)
	if c.Current() != 1 || c.Previous() != 0 {
		t.Errorf("after click: current=%d previous=%d, want 1/0", c.Current(), c.Previous())
	}
}

func TestToggleID(t *testing.T) {
	c, err := New(fixture(), "#demo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.ToggleID("two"); err != nil {
		t.Fatalf("ToggleID(two): %v", err)
	}
	assertPartition(t, c, 1)

	err = c.ToggleID("tow")
	if err == nil || !strings.Contains(err.Error(), `did you mean "two"`) {
		t.Errorf("ToggleID(tow) = %v, want a did-you-mean for %q", err, "two")
	}

	err = c.ToggleID("completely-unrelated")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("ToggleID(far id) = %v, want plain not-found error", err)
	}
}

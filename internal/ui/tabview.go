package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tabctl/internal/dom"
	"tabctl/internal/memdom"
	"tabctl/internal/tabs"
	"tabctl/internal/telemetry"
)

// tabZone is the horizontal extent of one rendered tab cell, for mouse hit
// tests. The bar occupies the top barHeight rows.
type tabZone struct {
	x0, x1 int // [x0, x1)
	index  int
}

const barHeight = 3 // rounded border: top, label, bottom

// TabsView renders one tab group and routes input back into the document.
type TabsView struct {
	ctrl   *tabs.Controller
	keys   keyMap
	help   help.Model
	tracer oteltrace.Tracer

	width  int
	height int
	status string
	isErr  bool
	zones  []tabZone
}

var _ View = (*TabsView)(nil)

// NewTabsView creates the host view for an already-constructed controller.
func NewTabsView(ctrl *tabs.Controller) *TabsView {
	return &TabsView{
		ctrl:   ctrl,
		keys:   defaultKeyMap(),
		help:   help.New(),
		tracer: telemetry.Tracer(),
		status: fmt.Sprintf("%d tabs", ctrl.Len()),
	}
}

// Init implements View.
func (v *TabsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *TabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		return v, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			v.handleClick(msg.X, msg.Y)
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Prev):
			v.cycle(-1)
		case key.Matches(msg, v.keys.Next):
			v.cycle(1)
		case key.Matches(msg, v.keys.Digit):
			v.jump(msg.String())
		case key.Matches(msg, v.keys.Rescan):
			v.ctrl.Rescan()
			v.setStatus(fmt.Sprintf("rescanned: %d tabs", v.ctrl.Len()), false)
		}
		return v, nil
	}
	return v, nil
}

// handleClick hit-tests the tab bar and dispatches a click event to the
// header node, driving activation through the document's listener path.
func (v *TabsView) handleClick(x, y int) {
	if y >= barHeight {
		return
	}
	for _, z := range v.zones {
		if x >= z.x0 && x < z.x1 {
			tab := v.ctrl.Tabs()[z.index]
			v.traced("tabs.click", z.index, func() error {
				memdom.DispatchClick(tab.Header)
				return nil
			})
			v.setStatus("tab: "+v.activeLabel(), false)
			return
		}
	}
}

// cycle moves the active tab by delta with wraparound.
func (v *TabsView) cycle(delta int) {
	n := v.ctrl.Len()
	if n == 0 {
		return
	}
	next := (v.ctrl.Current() + delta + n) % n
	v.activate(next)
}

// jump activates the tab for a digit key; "1" is the first tab.
func (v *TabsView) jump(digit string) {
	if len(digit) != 1 {
		return
	}
	v.activate(int(digit[0] - '1'))
}

func (v *TabsView) activate(index int) {
	err := v.traced("tabs.toggle", index, func() error {
		return v.ctrl.Toggle(index)
	})
	if err != nil {
		v.setStatus(err.Error(), true)
		return
	}
	v.setStatus("tab: "+v.activeLabel(), false)
}

// traced runs fn under an interaction span.
func (v *TabsView) traced(name string, index int, fn func() error) error {
	_, span := v.tracer.Start(context.Background(), name, oteltrace.WithAttributes(
		attribute.Int("tab.index.from", v.ctrl.Current()),
		attribute.Int("tab.index.to", index),
	))
	defer span.End()
	err := fn()
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (v *TabsView) setStatus(s string, isErr bool) {
	v.status = s
	v.isErr = isErr
}

func (v *TabsView) activeLabel() string {
	cur := v.ctrl.Current()
	if cur < 0 || cur >= v.ctrl.Len() {
		return "none"
	}
	return headerLabel(v.ctrl.Tabs()[cur])
}

// View implements View.
func (v *TabsView) View() string {
	var b strings.Builder
	b.WriteString(v.renderTabBar())
	b.WriteByte('\n')

	for _, panel := range v.visiblePanels() {
		b.WriteString(Styles.Panel.Render(nodeText(panel)))
		b.WriteByte('\n')
	}

	status := Styles.Status
	if v.isErr {
		status = Styles.StatusError
	}
	b.WriteString(status.Render(v.status))
	b.WriteByte('\n')
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

// renderTabBar draws one bordered cell per header, styled by the header's
// own class attribute, and records hit zones for the mouse.
func (v *TabsView) renderTabBar() string {
	cn := v.ctrl.Options().ClassNames
	v.zones = v.zones[:0]

	cells := make([]string, 0, v.ctrl.Len())
	x := 0
	for i, tab := range v.ctrl.Tabs() {
		style := Styles.TabInactive
		if dom.HasClass(tab.Header.ClassAttr(), cn.Active) {
			style = Styles.TabActive
		}
		cell := style.Render(fmt.Sprintf("[%d] %s", i+1, headerLabel(tab)))
		w := lipgloss.Width(cell)
		v.zones = append(v.zones, tabZone{x0: x, x1: x + w, index: i})
		x += w
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return Styles.Hint.Render("no tabs found")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// visiblePanels returns every linked panel whose class list says visible,
// deduped across tabs, in tab order.
func (v *TabsView) visiblePanels() []dom.Node {
	cn := v.ctrl.Options().ClassNames
	seen := make(map[dom.Node]bool)
	var out []dom.Node
	for _, tab := range v.ctrl.Tabs() {
		for _, panel := range tab.Linked {
			if seen[panel] || !dom.HasClass(panel.ClassAttr(), cn.Show) {
				continue
			}
			seen[panel] = true
			out = append(out, panel)
		}
	}
	return out
}

// headerLabel prefers the element's text; falls back to its ID.
func headerLabel(tab tabs.Tab) string {
	if text := nodeText(tab.Header); text != "" {
		return text
	}
	if tab.ID != "" {
		return tab.ID
	}
	return "(unnamed)"
}

// nodeText reads display text from the in-memory element backing a node.
func nodeText(n dom.Node) string {
	if e, ok := n.(*memdom.Element); ok {
		return e.Text
	}
	return ""
}

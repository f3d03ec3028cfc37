// Package ui hosts the tab controller in a Bubble Tea program: it renders the
// in-memory document's tab state and feeds clicks and key presses back
// through the document's listener path.
//
// Presentation is driven by the document, not by controller internals: the
// tab bar styles a header by reading its active/inactive classes, and a panel
// is rendered iff its class list says visible.
package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// appModelAdapter wraps a View to implement tea.Model.
type appModelAdapter struct {
	view View
}

var _ tea.Model = (*appModelAdapter)(nil)

// AsTeaModel adapts a View for tea.NewProgram.
func AsTeaModel(v View) tea.Model { return &appModelAdapter{view: v} }

func (a *appModelAdapter) Init() tea.Cmd { return a.view.Init() }

func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := a.view.Update(msg)
	a.view = v
	return a, cmd
}

func (a *appModelAdapter) View() string { return a.view.View() }

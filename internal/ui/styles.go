package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, active tab
	ColorHighlight = "205" // Magenta - for borders, highlights
	ColorMuted     = "241" // Gray - for dimmed text, inactive tabs
	ColorText      = "252" // Light gray - for normal text
	ColorDanger    = "196" // Red - for error status
)

// Styles contains shared style definitions used across the tab host.
var Styles = struct {
	TabActive   lipgloss.Style // active tab cell
	TabInactive lipgloss.Style // inactive tab cell
	Panel       lipgloss.Style // visible panel box
	Title       lipgloss.Style // panel titles
	Status      lipgloss.Style // status line
	StatusError lipgloss.Style // status line after a rejected activation
	Hint        lipgloss.Style // help/hint text
}{
	TabActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Bold(true),
	TabInactive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		Margin(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

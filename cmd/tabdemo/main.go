// Command tabdemo runs the tab controller against an in-memory document and
// hosts it in a Bubble Tea program. Page content and class names come from
// the config file (see internal/config); OTLP tracing of interactions is
// enabled by setting OTEL_EXPORTER_OTLP_ENDPOINT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tabctl/internal/config"
	"tabctl/internal/memdom"
	"tabctl/internal/tabs"
	"tabctl/internal/telemetry"
	"tabctl/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: $TABCTL_CONFIG, then ~/.config/tabctl/config.toml)")
	verbose := flag.Bool("v", false, "log startup details")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabdemo: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		log.Printf("config: %d page tabs, default active tab %d", len(cfg.Page), cfg.Defaults.ActiveTab)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabdemo: telemetry setup: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	opts := cfg.TabOptions()
	tabClass := opts.ClassNames.Tab
	if tabClass == "" {
		tabClass = tabs.DefaultOptions().ClassNames.Tab
	}
	doc := buildDocument(cfg.Page, tabClass)
	ctrl, err := tabs.New(doc, "#demo", &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabdemo: %v\n", err)
		os.Exit(1)
	}
	if ctrl.Len() == 0 {
		fmt.Fprintln(os.Stderr, "tabdemo: the configured page has no tabs")
		os.Exit(1)
	}

	p := tea.NewProgram(
		ui.AsTeaModel(ui.NewTabsView(ctrl)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// buildDocument assembles the demo tree: a #demo container holding one header
// per page tab (carrying the tab marker class) and one panel element per
// panel string (classed with the owning tab's ID).
func buildDocument(page []config.PageTab, tabClass string) *memdom.Document {
	container := memdom.NewElement("div", "demo")
	for _, pt := range page {
		header := memdom.NewElement("span", pt.ID, tabClass)
		header.Text = pt.Label
		container.Append(header)
	}
	for _, pt := range page {
		for _, body := range pt.Panels {
			panel := memdom.NewElement("div", "", pt.ID)
			panel.Text = body
			container.Append(panel)
		}
	}
	return memdom.NewDocument(memdom.NewElement("body", "").Append(container))
}

// Package tabs implements the tab controller: it discovers tab headers and
// their linked panels under a root container and keeps exactly one tab active
// by toggling marker class names through the dom capability surface.
package tabs

// ClassNames holds the marker class names the controller reads and writes.
type ClassNames struct {
	Container string // added to the resolved root node
	Tab       string // identifies tab headers during a scan
	Active    string // applied to the active header
	Inactive  string // applied to every other header
	Hide      string // applied to hidden panels
	Show      string // applied to the active tab's panels
}

// Defaults holds initial-state settings.
type Defaults struct {
	// ActiveTab is the index activated after construction. Out-of-range
	// values clamp to 0.
	ActiveTab int
}

// Options configures a Controller. Zero-value fields fall back to
// DefaultOptions; merging is per field within each group, so supplying one
// class name leaves the others at their defaults.
type Options struct {
	ClassNames ClassNames
	Defaults   Defaults
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		ClassNames: ClassNames{
			Container: "tabs-container",
			Tab:       "tab",
			Active:    "active",
			Inactive:  "inactive",
			Hide:      "hidden",
			Show:      "visible",
		},
		Defaults: Defaults{ActiveTab: 0},
	}
}

// mergeOptions lays opts over the defaults and returns a fresh value; no
// instance ever shares mutable option state with another.
func mergeOptions(opts *Options) Options {
	merged := DefaultOptions()
	if opts == nil {
		return merged
	}
	mergeString(&merged.ClassNames.Container, opts.ClassNames.Container)
	mergeString(&merged.ClassNames.Tab, opts.ClassNames.Tab)
	mergeString(&merged.ClassNames.Active, opts.ClassNames.Active)
	mergeString(&merged.ClassNames.Inactive, opts.ClassNames.Inactive)
	mergeString(&merged.ClassNames.Hide, opts.ClassNames.Hide)
	mergeString(&merged.ClassNames.Show, opts.ClassNames.Show)
	merged.Defaults.ActiveTab = opts.Defaults.ActiveTab
	return merged
}

func mergeString(dst *string, supplied string) {
	if supplied != "" {
		*dst = supplied
	}
}

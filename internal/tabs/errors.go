package tabs

import "fmt"

// InvalidSelectorError reports a root selector the document cannot use.
type InvalidSelectorError struct {
	Selector string
	Reason   string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("tabs: invalid container selector %q: %s", e.Selector, e.Reason)
}

// IndexErrorKind distinguishes the two ways a tab index can be rejected.
type IndexErrorKind int

const (
	// IndexNonNumeric means the supplied value could not be parsed as an
	// integer at all.
	IndexNonNumeric IndexErrorKind = iota
	// IndexOutOfRange means the parsed integer falls outside [0, tab count).
	IndexOutOfRange
)

func (k IndexErrorKind) String() string {
	switch k {
	case IndexNonNumeric:
		return "non-numeric"
	case IndexOutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// InvalidIndexError reports a rejected tab activation. Value is the offending
// input as supplied; Count is the tab count at the time of the call.
type InvalidIndexError struct {
	Kind  IndexErrorKind
	Value any
	Count int
}

func (e *InvalidIndexError) Error() string {
	switch e.Kind {
	case IndexNonNumeric:
		return fmt.Sprintf("tabs: %s tab index %v", e.Kind, e.Value)
	default:
		return fmt.Sprintf("tabs: %s tab index %v (have %d tabs)", e.Kind, e.Value, e.Count)
	}
}

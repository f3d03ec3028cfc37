package tabs

import (
	"strconv"
	"strings"
)

// parseTabIndex coerces the value shapes hosts actually hand us into an
// integer index. Floats truncate toward zero; strings are trimmed and must be
// wholly numeric. Everything else is non-numeric.
func parseTabIndex(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case uint:
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case float32:
		return int(val), true
	case float64:
		return int(val), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

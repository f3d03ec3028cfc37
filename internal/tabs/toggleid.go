package tabs

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// suggestion threshold: an edit distance beyond this is noise, not a typo.
const maxSuggestDistance = 3

// ToggleID activates the tab whose header ID matches id. An unknown ID fails
// with an error that names the closest known ID when one is plausibly a typo.
func (c *Controller) ToggleID(id string) error {
	for i, tab := range c.tabs {
		if tab.ID == id {
			return c.Toggle(i)
		}
	}
	if near := c.nearestID(id); near != "" {
		return fmt.Errorf("tabs: no tab with id %q (did you mean %q?)", id, near)
	}
	return fmt.Errorf("tabs: no tab with id %q", id)
}

func (c *Controller) nearestID(id string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, tab := range c.tabs {
		if tab.ID == "" {
			continue
		}
		if d := levenshtein.ComputeDistance(id, tab.ID); d < bestDist {
			best, bestDist = tab.ID, d
		}
	}
	return best
}

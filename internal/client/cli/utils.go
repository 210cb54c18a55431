package cli

import (
	"fmt"

	"github.com/dmitrijs2005/campuskart/internal/client/filter"
)

// getStatus builds the prompt status: the logged-in user's name and the
// active view, e.g. "(Alex Johnson, free items)".
func (a *App) getStatus() string {
	u := a.identity.Session()
	if u == nil {
		return "(not logged in)"
	}
	if a.query.View == filter.ViewFree {
		return fmt.Sprintf("(%s, free items)", u.Name)
	}
	return fmt.Sprintf("(%s)", u.Name)
}

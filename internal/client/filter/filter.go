// Package filter derives the visible subset of the catalog from a query. It
// is a pure function over its inputs: no state, no persistence, and the full
// result is recomputed on every call.
package filter

import (
	"strings"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
)

// View is the coarse top-level filter dimension. It is distinct from the
// category/mode filters and combines with them conjunctively.
type View string

const (
	// ViewAll shows every item. Default.
	ViewAll View = "all"
	// ViewFree shows only items that cost nothing: donations and loans.
	ViewFree View = "free"
)

// Query describes one evaluation of the filter engine. Zero values mean
// "unset": an empty SearchTerm matches everything, an empty Category or Mode
// disables that filter, and an empty View behaves as ViewAll.
type Query struct {
	SearchTerm string
	Category   models.Category
	Mode       models.Mode
	View       View
}

// Visible returns the items matching q, preserving the input order. Every
// clause must hold: case-insensitive substring match on name or description,
// category equality, mode equality, and the view rule.
func Visible(items []models.Item, q Query) []models.Item {
	term := strings.ToLower(q.SearchTerm)

	result := make([]models.Item, 0, len(items))
	for _, item := range items {
		if !matches(item, term, q) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matches(item models.Item, term string, q Query) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(item.Name), term) &&
		!strings.Contains(strings.ToLower(item.Description), term) {
		return false
	}
	if q.Category != "" && item.Category != q.Category {
		return false
	}
	if q.Mode != "" && item.Mode != q.Mode {
		return false
	}
	if q.View == ViewFree && item.Mode != models.ModeDonate && item.Mode != models.ModeBorrow {
		return false
	}
	return true
}

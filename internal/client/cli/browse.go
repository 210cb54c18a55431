package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/campuskart/internal/client/filter"
	"github.com/dmitrijs2005/campuskart/internal/client/models"
)

// visible recomputes the visible item set from the current catalog snapshot
// and filter query. Called fresh on every render; never cached.
func (a *App) visible() []models.Item {
	return filter.Visible(a.catalog.ListAll(), a.query)
}

// Browse renders the catalog items matching the current filters.
func (a *App) Browse(ctx context.Context) error {
	items := a.visible()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items found. Try adjusting your filters.")
		return nil
	}

	for n, item := range items {
		fmt.Fprintf(a.out, "%d. %s\n", n+1, itemCard(item))
	}
	return nil
}

// itemCard formats one listing line: title, badges and the price tag.
// Donations render as FREE and loans as BORROW, matching the storefront.
func itemCard(item models.Item) string {
	price := fmt.Sprintf("$%.2f", item.Price)
	switch item.Mode {
	case models.ModeDonate:
		price = "FREE"
	case models.ModeBorrow:
		price = "BORROW"
	}

	card := fmt.Sprintf("%s [%s | %s] %s", item.Name, item.Category.DisplayName(), item.Mode.DisplayName(), price)
	if item.Description != "" {
		card += "\n   " + item.Description
	}
	return card
}

// Search sets the search term; with no argument it clears the term.
func (a *App) Search(ctx context.Context, args []string) error {
	a.query.SearchTerm = strings.Join(args, " ")
	return a.Browse(ctx)
}

// Category sets the category filter; with no argument it clears the filter.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.query.Category = ""
		return a.Browse(ctx)
	}
	c := models.Category(args[0])
	if !c.Valid() {
		fmt.Fprintln(a.out, "Unknown category. One of: stationery, lab, tech, books, misc")
		return nil
	}
	a.query.Category = c
	return a.Browse(ctx)
}

// Mode sets the mode filter; with no argument it clears the filter.
func (a *App) Mode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.query.Mode = ""
		return a.Browse(ctx)
	}
	m := models.Mode(args[0])
	if !m.Valid() {
		fmt.Fprintln(a.out, "Unknown mode. One of: buy, borrow, donate")
		return nil
	}
	a.query.Mode = m
	return a.Browse(ctx)
}

// SwitchView toggles between the all-items and free-items views.
func (a *App) SwitchView(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: view all|free")
		return nil
	}
	switch filter.View(args[0]) {
	case filter.ViewAll:
		a.query.View = filter.ViewAll
	case filter.ViewFree:
		a.query.View = filter.ViewFree
	default:
		fmt.Fprintln(a.out, "Usage: view all|free")
		return nil
	}
	return a.Browse(ctx)
}

// ClearFilters resets search, category and mode. The view toggle is a
// separate dimension and stays as it is.
func (a *App) ClearFilters(ctx context.Context) error {
	a.query.SearchTerm = ""
	a.query.Category = ""
	a.query.Mode = ""
	return a.Browse(ctx)
}

// Contact prints the seller details of the n-th currently visible item. The
// snapshot stamped on the item at posting time is shown, not a live lookup.
func (a *App) Contact(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: contact <n> (number from the last listing)")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: contact <n> (number from the last listing)")
		return nil
	}

	items := a.visible()
	if n < 1 || n > len(items) {
		fmt.Fprintf(a.out, "No visible item number %d\n", n)
		return nil
	}

	item := items[n-1]
	fmt.Fprintf(a.out, "Seller:  %s\nCollege: %s\nEmail:   %s\n", item.SellerName, item.SellerCollege, item.SellerEmail)
	return nil
}

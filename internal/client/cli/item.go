package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
	"github.com/dmitrijs2005/campuskart/internal/client/services"
	"github.com/dmitrijs2005/campuskart/internal/filex"
)

// dataURL is a test seam for filex.DataURL.
var dataURL = filex.DataURL

// Post walks a seller through the new-listing form: name, category, mode,
// price (skipped for donations), description and an optional photo. The
// catalog enforces the session/role and price rules; this method only
// collects input and reports the outcome.
func (a *App) Post(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Category (stationery, lab, tech, books, misc)", a.out)
	if err != nil {
		return err
	}

	mode, err := getSimpleText(a.reader, "Mode (buy, borrow, donate)", a.out)
	if err != nil {
		return err
	}

	var price float64
	if models.Mode(mode) != models.ModeDonate {
		raw, err := getSimpleText(a.reader, "Price", a.out)
		if err != nil {
			return err
		}
		price, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Error: invalid price: must be a number")
			return err
		}
	}

	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	imagePath, err := getSimpleText(a.reader, "Photo file path (leave empty to skip)", a.out)
	if err != nil {
		return err
	}
	var image string
	if imagePath != "" {
		image, err = dataURL(imagePath)
		if err != nil {
			a.notify(err)
			return err
		}
	}

	item, err := a.catalog.Create(ctx, services.CreateItemParams{
		Name:        name,
		Category:    models.Category(category),
		Mode:        models.Mode(mode),
		Price:       price,
		Description: description,
		Image:       image,
	})
	if err != nil {
		a.notify(err)
		return err
	}

	fmt.Fprintf(a.out, "Item added successfully! (%s)\n", item.Name)
	return a.Browse(ctx)
}

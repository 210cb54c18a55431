package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
	"github.com/dmitrijs2005/campuskart/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/campuskart/internal/common"
	"github.com/dmitrijs2005/campuskart/internal/logging"
	"github.com/google/uuid"
)

// SessionSource is the slice of the identity manager the catalog needs:
// resolving the acting user for mutating operations.
type SessionSource interface {
	RequireSession() (*models.User, error)
}

// Catalog owns the item collection. Items are appended in creation order and
// never reordered, edited or deleted.
type Catalog struct {
	store    kvstore.Repository
	sessions SessionSource
	log      logging.Logger

	items []models.Item

	// test seams
	now   func() time.Time
	newID func() string
}

// CreateItemParams carries the fully-populated post-item form fields. Image
// is an optional data-URL handle produced by filex.DataURL; empty means no
// photo.
type CreateItemParams struct {
	Name        string
	Category    models.Category
	Mode        models.Mode
	Price       float64
	Description string
	Image       string
}

// NewCatalog loads the persisted items. When the persisted collection is
// absent or empty and seed is true, it writes the one-time example catalog;
// once any real item exists the seed never runs again.
func NewCatalog(ctx context.Context, store kvstore.Repository, sessions SessionSource, seed bool, log logging.Logger) (*Catalog, error) {
	c := &Catalog{
		store:    store,
		sessions: sessions,
		log:      log.With("component", "catalog"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if err := c.load(ctx); err != nil {
		return nil, fmt.Errorf("load catalog state: %w", err)
	}

	if seed && len(c.items) == 0 {
		if err := c.seed(ctx); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	return c, nil
}

func (c *Catalog) load(ctx context.Context) error {
	raw, err := c.store.Get(ctx, itemsKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, &c.items); err != nil {
		return fmt.Errorf("unmarshal items: %w", err)
	}
	return nil
}

// ListAll returns the full catalog in creation order, oldest first. The
// returned slice is a copy; callers may not mutate catalog state through it.
func (c *Catalog) ListAll() []models.Item {
	return slices.Clone(c.items)
}

// Len reports the current catalog size.
func (c *Catalog) Len() int {
	return len(c.items)
}

func validateItem(p CreateItemParams) error {
	if p.Name == "" {
		return common.NewValidationError("name", "is required")
	}
	if !p.Category.Valid() {
		return common.NewValidationError("category", "must be one of stationery, lab, tech, books, misc")
	}
	if !p.Mode.Valid() {
		return common.NewValidationError("mode", "must be one of buy, borrow, donate")
	}
	if p.Mode != models.ModeDonate && p.Price <= 0 {
		return common.NewValidationError("price", "must be greater than zero")
	}
	return nil
}

// Create validates and appends a new listing. The caller must hold an active
// session (common.ErrUnauthenticated otherwise) with the buyer_and_seller
// role (common.ErrUnauthorized otherwise). Donated items always carry price
// zero regardless of the submitted value. The item becomes visible only after
// the full collection has been persisted.
func (c *Catalog) Create(ctx context.Context, p CreateItemParams) (*models.Item, error) {
	seller, err := c.sessions.RequireSession()
	if err != nil {
		return nil, err
	}
	if seller.Role != models.RoleBuyerAndSeller {
		return nil, common.ErrUnauthorized
	}

	if err := validateItem(p); err != nil {
		return nil, err
	}

	price := p.Price
	if p.Mode == models.ModeDonate {
		price = 0
	}

	item := models.Item{
		ID:            c.newID(),
		Name:          p.Name,
		Category:      p.Category,
		Mode:          p.Mode,
		Price:         price,
		Description:   p.Description,
		Image:         p.Image,
		SellerID:      seller.ID,
		SellerName:    seller.Name,
		SellerCollege: seller.College,
		SellerEmail:   seller.Email,
		CreatedAt:     c.now().UTC(),
	}

	next := append(slices.Clone(c.items), item)
	if err := c.persist(ctx, next); err != nil {
		return nil, err
	}
	c.items = next

	c.log.Info(ctx, "item posted", "id", item.ID, "category", item.Category, "mode", item.Mode)
	return &c.items[len(c.items)-1], nil
}

func (c *Catalog) persist(ctx context.Context, items []models.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	if err := c.store.Set(ctx, itemsKey, data); err != nil {
		return fmt.Errorf("persist items: %w", err)
	}
	return nil
}

func (c *Catalog) seed(ctx context.Context) error {
	items := sampleItems(c.now().UTC())
	if err := c.persist(ctx, items); err != nil {
		return err
	}
	c.items = items
	c.log.Info(ctx, "seeded example catalog", "count", len(items))
	return nil
}

// sampleItems is the one-time bootstrap catalog shown to the first user of a
// fresh store. The seller ids match no registered user, so these listings can
// never be claimed or used to authenticate.
func sampleItems(now time.Time) []models.Item {
	return []models.Item{
		{
			ID:            "sample1",
			Name:          "Scientific Calculator TI-84",
			Category:      models.CategoryTech,
			Mode:          models.ModeBuy,
			Price:         45.99,
			Description:   "Barely used graphing calculator, perfect for math and engineering courses.",
			SellerID:      "sample",
			SellerName:    "Alex Johnson",
			SellerCollege: "State University",
			SellerEmail:   "alex.j@email.com",
			CreatedAt:     now,
		},
		{
			ID:            "sample2",
			Name:          "Lab Coat - Size M",
			Category:      models.CategoryLab,
			Mode:          models.ModeDonate,
			Price:         0,
			Description:   "Clean lab coat, used for one semester. Great condition.",
			SellerID:      "sample",
			SellerName:    "Sarah Chen",
			SellerCollege: "Tech Institute",
			SellerEmail:   "sarah.c@email.com",
			CreatedAt:     now,
		},
		{
			ID:            "sample3",
			Name:          "Organic Chemistry Textbook",
			Category:      models.CategoryBooks,
			Mode:          models.ModeBorrow,
			Price:         0,
			Description:   "Latest edition, available for borrowing for the semester.",
			SellerID:      "sample",
			SellerName:    "Mike Rodriguez",
			SellerCollege: "Community College",
			SellerEmail:   "mike.r@email.com",
			CreatedAt:     now,
		},
		{
			ID:            "sample4",
			Name:          "Notebook Set (5 pack)",
			Category:      models.CategoryStationery,
			Mode:          models.ModeBuy,
			Price:         12.50,
			Description:   "Brand new spiral notebooks, perfect for note-taking.",
			SellerID:      "sample",
			SellerName:    "Emma Wilson",
			SellerCollege: "Liberal Arts College",
			SellerEmail:   "emma.w@email.com",
			CreatedAt:     now,
		},
	}
}

package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
	"github.com/dmitrijs2005/campuskart/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/campuskart/internal/common"
)

// fakeSessions satisfies SessionSource without a real identity manager.
type fakeSessions struct {
	user *models.User
	err  error
}

func (f *fakeSessions) RequireSession() (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func seller() *models.User {
	return &models.User{
		ID:      "u-1",
		Name:    "Alex Johnson",
		Email:   "alex.j@email.com",
		College: "State University",
		Role:    models.RoleBuyerAndSeller,
	}
}

func newCatalog(t *testing.T, store kvstore.Repository, sessions SessionSource, seed bool) *Catalog {
	t.Helper()
	c, err := NewCatalog(context.Background(), store, sessions, seed, testLogger())
	require.NoError(t, err)
	return c
}

func validListing() CreateItemParams {
	return CreateItemParams{
		Name:        "Desk Lamp",
		Category:    models.CategoryMisc,
		Mode:        models.ModeBuy,
		Price:       9.99,
		Description: "Bright LED lamp",
	}
}

// ---- bootstrap ----

func TestNewCatalog_SeedsEmptyStoreOnce(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	c := newCatalog(t, store, &fakeSessions{user: seller()}, true)
	require.Equal(t, 4, c.Len())

	// seed is persisted, not just in memory
	raw, err := store.Get(ctx, itemsKey)
	require.NoError(t, err)
	var persisted []models.Item
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, 4)

	// reopening the same store does not duplicate the seed
	again := newCatalog(t, store, &fakeSessions{user: seller()}, true)
	assert.Equal(t, 4, again.Len())
}

func TestNewCatalog_DoesNotReseedOverRealItems(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	one := []models.Item{{ID: "real-1", Name: "Bike", Category: models.CategoryMisc, Mode: models.ModeBuy, Price: 50}}
	data, err := json.Marshal(one)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, itemsKey, data))

	c := newCatalog(t, store, &fakeSessions{user: seller()}, true)
	assert.Equal(t, 1, c.Len(), "a store with one real item must stay at length 1")
	assert.Equal(t, "real-1", c.ListAll()[0].ID)
}

func TestNewCatalog_SeedDisabled(t *testing.T) {
	c := newCatalog(t, setupStore(t), &fakeSessions{user: seller()}, false)
	assert.Equal(t, 0, c.Len())
}

// ---- create: access control ----

func TestCreate_RequiresActiveSession(t *testing.T) {
	c := newCatalog(t, setupStore(t), &fakeSessions{err: common.ErrUnauthenticated}, false)

	_, err := c.Create(context.Background(), validListing())
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Equal(t, 0, c.Len())
}

func TestCreate_BuyerRoleIsRejected(t *testing.T) {
	buyer := seller()
	buyer.Role = models.RoleBuyer
	c := newCatalog(t, setupStore(t), &fakeSessions{user: buyer}, false)

	_, err := c.Create(context.Background(), validListing())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, 0, c.Len(), "catalog length must be unchanged")
}

// ---- create: validation ----

func TestCreate_FieldValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateItemParams)
		wantField string
	}{
		{"missing name", func(p *CreateItemParams) { p.Name = "" }, "name"},
		{"unknown category", func(p *CreateItemParams) { p.Category = "furniture" }, "category"},
		{"missing category", func(p *CreateItemParams) { p.Category = "" }, "category"},
		{"unknown mode", func(p *CreateItemParams) { p.Mode = "rent" }, "mode"},
		{"buy with zero price", func(p *CreateItemParams) { p.Mode = models.ModeBuy; p.Price = 0 }, "price"},
		{"buy with negative price", func(p *CreateItemParams) { p.Mode = models.ModeBuy; p.Price = -5 }, "price"},
		{"borrow with zero price", func(p *CreateItemParams) { p.Mode = models.ModeBorrow; p.Price = 0 }, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCatalog(t, setupStore(t), &fakeSessions{user: seller()}, false)

			p := validListing()
			tt.mutate(&p)

			_, err := c.Create(context.Background(), p)
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, 0, c.Len(), "no item may be appended on validation failure")
		})
	}
}

func TestCreate_DonateForcesZeroPrice(t *testing.T) {
	c := newCatalog(t, setupStore(t), &fakeSessions{user: seller()}, false)

	p := validListing()
	p.Mode = models.ModeDonate
	p.Price = 25 // submitted price is ignored for donations

	item, err := c.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Zero(t, item.Price)
}

// ---- create: attribution and persistence ----

func TestCreate_StampsSellerSnapshot(t *testing.T) {
	store := setupStore(t)
	c := newCatalog(t, store, &fakeSessions{user: seller()}, false)
	ctx := context.Background()

	item, err := c.Create(ctx, validListing())
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, "u-1", item.SellerID)
	assert.Equal(t, "Alex Johnson", item.SellerName)
	assert.Equal(t, "State University", item.SellerCollege)
	assert.Equal(t, "alex.j@email.com", item.SellerEmail)

	// persisted before becoming visible
	raw, err := store.Get(ctx, itemsKey)
	require.NoError(t, err)
	var persisted []models.Item
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, item.ID, persisted[0].ID)
}

func TestCreate_PersistFailureIsAllOrNothing(t *testing.T) {
	inner := setupStore(t)
	fs := &failingStore{Repository: inner}
	c := newCatalog(t, fs, &fakeSessions{user: seller()}, false)

	fs.failSet = true
	_, err := c.Create(context.Background(), validListing())
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	fs.failSet = false
	_, err = c.Create(context.Background(), validListing())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestListAll_ReturnsACopyInCreationOrder(t *testing.T) {
	c := newCatalog(t, setupStore(t), &fakeSessions{user: seller()}, false)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		p := validListing()
		p.Name = name
		_, err := c.Create(ctx, p)
		require.NoError(t, err)
	}

	all := c.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
	assert.Equal(t, "Third", all[2].Name)

	// mutating the returned slice must not leak into catalog state
	all[0].Name = "Hacked"
	assert.Equal(t, "First", c.ListAll()[0].Name)
}

func TestCatalog_RoundTripPreservesOrderAndFields(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	c := newCatalog(t, store, &fakeSessions{user: seller()}, true)
	p := validListing()
	p.Description = "posted after the seed"
	_, err := c.Create(ctx, p)
	require.NoError(t, err)

	before := c.ListAll()

	// fresh catalog over the same store: identical ordered sequence
	reloaded := newCatalog(t, store, &fakeSessions{user: seller()}, true)
	after := reloaded.ListAll()

	wantJSON, err := json.Marshal(before)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(after)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

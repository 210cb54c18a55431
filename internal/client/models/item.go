package models

import "time"

// Category classifies an item in the catalog.
type Category string

const (
	CategoryStationery Category = "stationery"
	CategoryLab        Category = "lab"
	CategoryTech       Category = "tech"
	CategoryBooks      Category = "books"
	CategoryMisc       Category = "misc"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStationery, CategoryLab, CategoryTech, CategoryBooks, CategoryMisc:
		return true
	}
	return false
}

// DisplayName returns the human label shown in item listings.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStationery:
		return "Stationery"
	case CategoryLab:
		return "Lab Items"
	case CategoryTech:
		return "Tech"
	case CategoryBooks:
		return "Books"
	case CategoryMisc:
		return "Misc"
	}
	return string(c)
}

// Mode is how an item changes hands: sold, lent for a period, or given away.
type Mode string

const (
	ModeBuy    Mode = "buy"
	ModeBorrow Mode = "borrow"
	ModeDonate Mode = "donate"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeBuy || m == ModeBorrow || m == ModeDonate
}

// DisplayName returns the human label shown in item listings.
func (m Mode) DisplayName() string {
	switch m {
	case ModeBuy:
		return "For Sale"
	case ModeBorrow:
		return "Borrow"
	case ModeDonate:
		return "Free"
	}
	return string(m)
}

// Item is a single marketplace listing. Items are append-only: once created
// they are never edited or removed.
//
// Seller fields are a snapshot of the posting user taken at creation time.
// This is deliberate: the contact info that was valid when the item was
// listed stays authoritative even if the account ever changes.
type Item struct {
	// ID is a globally unique identifier assigned at creation.
	ID string `json:"id"`

	// Name is the listing title, required.
	Name string `json:"name"`

	// Category classifies the item.
	Category Category `json:"category"`

	// Mode is buy, borrow or donate.
	Mode Mode `json:"mode"`

	// Price in currency units. Zero when Mode is donate, strictly positive
	// otherwise.
	Price float64 `json:"price"`

	// Description is optional free text.
	Description string `json:"description"`

	// Image is an optional opaque encoded-image handle (a data URL), empty
	// when no photo was attached.
	Image string `json:"image,omitempty"`

	SellerID      string `json:"sellerId"`
	SellerName    string `json:"sellerName"`
	SellerCollege string `json:"sellerCollege"`
	SellerEmail   string `json:"sellerEmail"`

	// CreatedAt is the listing time in UTC.
	CreatedAt time.Time `json:"createdAt"`
}

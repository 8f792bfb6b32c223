package cart

import (
	"github.com/narendranaragani/printmaania/internal/model"
)

// Store is the cart collection: one line per product id, persisted as a JSON
// snapshot after every mutation.
type Store interface {
	Items() []model.CartItem
	Get(productID string) (model.CartItem, bool)
	// Add merges into an existing line for the same product id by
	// incrementing its quantity.
	Add(item model.CartItem) error
	Update(productID string, updates ItemUpdate) error
	Remove(productID string) error
	Clear() error
	TotalItems() int
}

// ItemUpdate carries partial cart-line changes; nil fields are untouched.
type ItemUpdate struct {
	Quantity       *int
	Color          *string
	Size           *string
	Material       *string
	CustomOptions  map[string]string
	DesignUploaded *bool
	DesignFileName *string
	Notes          *string
}

// WishlistStore is a set of catalog pointers, disjoint from save-for-later.
type WishlistStore interface {
	Items() []model.WishlistItem
	Add(productID, productSlug string) error
	Remove(productID string) error
	Contains(productID string) bool
	Count() int
	Clear() error
}

// SaveForLaterStore holds full cart lines parked for a later purchase.
type SaveForLaterStore interface {
	Items() []model.CartItem
	Add(item model.CartItem) error
	Remove(productID string) error
	// MoveToCart removes and returns the parked line so the caller can put it
	// back into the cart.
	MoveToCart(productID string) (model.CartItem, bool, error)
	Clear() error
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendranaragani/printmaania/internal/cart"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/storage"
)

func TestCartAddMergesByProductID(t *testing.T) {
	s, err := NewCartStore(storage.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, s.Add(model.CartItem{ProductID: "custom-mugs", ProductSlug: "custom-mugs", Quantity: 2}))
	require.NoError(t, s.Add(model.CartItem{ProductID: "custom-mugs", ProductSlug: "custom-mugs", Quantity: 3}))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, s.TotalItems())
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	s, err := NewCartStore(storage.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, s.Add(model.CartItem{ProductID: "posters"}))

	item, ok := s.Get("posters")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartUpdateOverwritesVariantInPlace(t *testing.T) {
	s, err := NewCartStore(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, s.Add(model.CartItem{ProductID: "t-shirts", Quantity: 2, Color: "Black", Size: "M"}))

	newSize := "XL"
	require.NoError(t, s.Update("t-shirts", cart.ItemUpdate{Size: &newSize}))

	item, ok := s.Get("t-shirts")
	require.True(t, ok)
	assert.Equal(t, "XL", item.Size)
	assert.Equal(t, "Black", item.Color) // untouched
	assert.Equal(t, 2, item.Quantity)

	// Still one line for the product id.
	assert.Len(t, s.Items(), 1)
}

func TestCartRemoveAndClear(t *testing.T) {
	s, err := NewCartStore(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, s.Add(model.CartItem{ProductID: "a", Quantity: 1}))
	require.NoError(t, s.Add(model.CartItem{ProductID: "b", Quantity: 1}))

	require.NoError(t, s.Remove("a"))
	assert.Len(t, s.Items(), 1)

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Items())
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	backend := storage.NewMemoryStore()

	s1, err := NewCartStore(backend)
	require.NoError(t, err)
	require.NoError(t, s1.Add(model.CartItem{ProductID: "stickers", Quantity: 10, Notes: "die-cut please"}))

	s2, err := NewCartStore(backend)
	require.NoError(t, err)
	item, ok := s2.Get("stickers")
	require.True(t, ok)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, "die-cut please", item.Notes)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	s, err := NewWishlistStore(storage.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, s.Add("custom-mugs", "custom-mugs"))
	require.NoError(t, s.Add("custom-mugs", "custom-mugs"))

	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Contains("custom-mugs"))
	assert.False(t, s.Contains("posters"))
}

func TestWishlistRemove(t *testing.T) {
	s, err := NewWishlistStore(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, s.Add("a", "slug-a"))
	require.NoError(t, s.Add("b", "slug-b"))

	require.NoError(t, s.Remove("a"))
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Contains("a"))
}

func TestSaveForLaterMoveToCart(t *testing.T) {
	s, err := NewSaveForLaterStore(storage.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, s.Add(model.CartItem{ProductID: "hoodies", Quantity: 2, Size: "L"}))

	item, ok, err := s.MoveToCart("hoodies")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "L", item.Size)
	assert.Empty(t, s.Items())

	// Moving again finds nothing.
	_, ok, err = s.MoveToCart("hoodies")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoresAreDisjoint(t *testing.T) {
	backend := storage.NewMemoryStore()

	cartStore, err := NewCartStore(backend)
	require.NoError(t, err)
	wishlist, err := NewWishlistStore(backend)
	require.NoError(t, err)
	saved, err := NewSaveForLaterStore(backend)
	require.NoError(t, err)

	require.NoError(t, cartStore.Add(model.CartItem{ProductID: "x", Quantity: 1}))
	require.NoError(t, wishlist.Add("y", "slug-y"))
	require.NoError(t, saved.Add(model.CartItem{ProductID: "z", Quantity: 1}))

	assert.Len(t, cartStore.Items(), 1)
	assert.Equal(t, 1, wishlist.Count())
	assert.Len(t, saved.Items(), 1)
	assert.False(t, wishlist.Contains("x"))
}

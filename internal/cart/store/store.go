// Package store implements the cart, wishlist and save-for-later collections
// as explicit state containers persisted through the storage adapter. Each
// collection lives under its own namespace key and is written back as a full
// snapshot after every mutation (last write wins).
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/narendranaragani/printmaania/internal/cart"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/storage"
)

const (
	cartKey         = "printmaania-cart"
	wishlistKey     = "printmaania-wishlist"
	saveForLaterKey = "printmaania-save-for-later"
)

var (
	_ cart.Store             = (*CartStore)(nil)
	_ cart.WishlistStore     = (*WishlistStore)(nil)
	_ cart.SaveForLaterStore = (*SaveForLaterStore)(nil)
)

type CartStore struct {
	mu      sync.Mutex
	backend storage.Store
	items   []model.CartItem
}

func NewCartStore(backend storage.Store) (*CartStore, error) {
	s := &CartStore{backend: backend}
	if err := backend.Load(cartKey, &s.items); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return s, nil
}

func (s *CartStore) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Get(productID string) (model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return model.CartItem{}, false
}

func (s *CartStore) Add(item model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			return s.persist()
		}
	}

	s.items = append(s.items, item)
	return s.persist()
}

func (s *CartStore) Update(productID string, updates cart.ItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		applyUpdate(&s.items[i], updates)
		return s.persist()
	}
	return nil
}

func (s *CartStore) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist()
}

func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist()
}

func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *CartStore) persist() error {
	return s.backend.Save(cartKey, s.items)
}

func applyUpdate(item *model.CartItem, u cart.ItemUpdate) {
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.Color != nil {
		item.Color = *u.Color
	}
	if u.Size != nil {
		item.Size = *u.Size
	}
	if u.Material != nil {
		item.Material = *u.Material
	}
	if u.CustomOptions != nil {
		item.CustomOptions = u.CustomOptions
	}
	if u.DesignUploaded != nil {
		item.DesignUploaded = *u.DesignUploaded
	}
	if u.DesignFileName != nil {
		item.DesignFileName = *u.DesignFileName
	}
	if u.Notes != nil {
		item.Notes = *u.Notes
	}
}

type WishlistStore struct {
	mu      sync.Mutex
	backend storage.Store
	items   []model.WishlistItem
}

func NewWishlistStore(backend storage.Store) (*WishlistStore, error) {
	s := &WishlistStore{backend: backend}
	if err := backend.Load(wishlistKey, &s.items); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return s, nil
}

func (s *WishlistStore) Items() []model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) Add(productID, productSlug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return nil
		}
	}
	s.items = append(s.items, model.WishlistItem{
		ProductID:   productID,
		ProductSlug: productSlug,
		AddedAt:     time.Now(),
	})
	return s.backend.Save(wishlistKey, s.items)
}

func (s *WishlistStore) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.backend.Save(wishlistKey, s.items)
}

func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *WishlistStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.backend.Save(wishlistKey, s.items)
}

type SaveForLaterStore struct {
	mu      sync.Mutex
	backend storage.Store
	items   []model.CartItem
}

func NewSaveForLaterStore(backend storage.Store) (*SaveForLaterStore, error) {
	s := &SaveForLaterStore{backend: backend}
	if err := backend.Load(saveForLaterKey, &s.items); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return s, nil
}

func (s *SaveForLaterStore) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SaveForLaterStore) Add(item model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ProductID == item.ProductID {
			return nil
		}
	}
	s.items = append(s.items, item)
	return s.backend.Save(saveForLaterKey, s.items)
}

func (s *SaveForLaterStore) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

func (s *SaveForLaterStore) MoveToCart(productID string) (model.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			if err := s.removeLocked(productID); err != nil {
				return model.CartItem{}, false, err
			}
			return item, true, nil
		}
	}
	return model.CartItem{}, false, nil
}

func (s *SaveForLaterStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.backend.Save(saveForLaterKey, s.items)
}

func (s *SaveForLaterStore) removeLocked(productID string) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.backend.Save(saveForLaterKey, s.items)
}

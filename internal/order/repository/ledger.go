package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/order"
	"github.com/narendranaragani/printmaania/pkg/storage"
)

const ordersKey = "printmaania-orders"

var _ order.Repository = (*LedgerRepository)(nil)

// LedgerRepository keeps the full order history as a single snapshot in the
// backing store, newest order first.
type LedgerRepository struct {
	store  storage.Store
	mu     sync.Mutex
	orders []model.Order
}

func NewLedgerRepository(store storage.Store) (*LedgerRepository, error) {
	r := &LedgerRepository{store: store}
	if err := store.Load(ordersKey, &r.orders); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return r, nil
}

func (r *LedgerRepository) Create(_ context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]model.Order{*o}, r.orders...)
	return r.persist()
}

func (r *LedgerRepository) FindByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *LedgerRepository) FindByUser(_ context.Context, userID string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if userID == "" || o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *LedgerRepository) Update(_ context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = *o
			return r.persist()
		}
	}
	return order.ErrOrderNotFound
}

func (r *LedgerRepository) persist() error {
	return r.store.Save(ordersKey, r.orders)
}

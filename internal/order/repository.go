package order

import (
	"context"
	"errors"

	"github.com/narendranaragani/printmaania/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	// FindByUser returns the user's orders newest first. An empty userID
	// is only supported by the ledger repository and returns every order.
	FindByUser(ctx context.Context, userID string) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
}

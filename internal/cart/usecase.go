package cart

import (
	"context"

	"github.com/narendranaragani/printmaania/internal/cart/dto"
	"github.com/narendranaragani/printmaania/internal/model"
)

type UseCase interface {
	// Totals prices every line against the live catalog and folds the
	// results into order-level totals.
	Totals(ctx context.Context, items []model.CartItem) (*dto.CartTotals, error)
}

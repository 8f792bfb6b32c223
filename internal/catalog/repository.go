package catalog

import (
	"context"

	"github.com/narendranaragani/printmaania/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// Resolve looks a product up by slug first, falling back to id. Cart and
	// order lines carry both so the lookup survives either key.
	Resolve(ctx context.Context, slug, id string) (*model.Product, error)
}

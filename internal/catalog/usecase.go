package catalog

import (
	"context"

	"github.com/narendranaragani/printmaania/internal/catalog/dto"
	"github.com/narendranaragani/printmaania/internal/model"
)

type UseCase interface {
	// List applies search, then filters, then sort, in that fixed order.
	List(ctx context.Context, input *dto.ListInput) ([]model.Product, int, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)

	// SyncIndex pushes the catalog into the search index, when one is wired.
	SyncIndex(ctx context.Context) error
}

package repository

import (
	"context"

	"github.com/narendranaragani/printmaania/internal/model"
)

// MemoryRepository serves the fixed catalog. Products are loaded once and
// never mutated, so reads need no locking.
type MemoryRepository struct {
	products []model.Product
	bySlug   map[string]*model.Product
	byID     map[string]*model.Product
}

func NewMemoryRepository(products []model.Product) *MemoryRepository {
	r := &MemoryRepository{
		products: products,
		bySlug:   make(map[string]*model.Product, len(products)),
		byID:     make(map[string]*model.Product, len(products)),
	}
	for i := range r.products {
		p := &r.products[i]
		r.bySlug[p.Slug] = p
		r.byID[p.ID] = p
	}
	return r
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if p, ok := r.bySlug[slug]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) Resolve(ctx context.Context, slug, id string) (*model.Product, error) {
	if slug != "" {
		if p, err := r.FindBySlug(ctx, slug); err != nil || p != nil {
			return p, err
		}
		// A cart line created before slugs were captured stores the id in the
		// slug field; fall through to the id lookup.
		if p, err := r.FindByID(ctx, slug); err != nil || p != nil {
			return p, err
		}
	}
	return r.FindByID(ctx, id)
}

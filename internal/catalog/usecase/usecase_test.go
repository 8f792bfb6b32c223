package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendranaragani/printmaania/internal/catalog/dto"
	"github.com/narendranaragani/printmaania/internal/catalog/repository"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

func newTestUseCase() *catalogUseCase {
	repo := repository.NewMemoryRepository(repository.SeedProducts())
	return &catalogUseCase{repo: repo, logger: logger.NewNop()}
}

func titles(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestListSearchCaseInsensitive(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	lower, _, err := uc.List(ctx, &dto.ListInput{Query: "mug", SortBy: dto.SortRelevance})
	require.NoError(t, err)
	upper, _, err := uc.List(ctx, &dto.ListInput{Query: "MUG", SortBy: dto.SortRelevance})
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, titles(lower), titles(upper))
}

func TestListSearchMatchesAcrossFields(t *testing.T) {
	uc := newTestUseCase()

	// "Sublimation" only appears in printing methods.
	got, _, err := uc.List(context.Background(), &dto.ListInput{Query: "sublimation", SortBy: dto.SortRelevance})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Custom Mugs", got[0].Title)
}

func TestListBlankQueryReturnsAll(t *testing.T) {
	uc := newTestUseCase()

	got, count, err := uc.List(context.Background(), &dto.ListInput{Query: "   ", SortBy: dto.SortRelevance})
	require.NoError(t, err)
	assert.Equal(t, len(repository.SeedProducts()), count)
	assert.Len(t, got, count)
}

func TestListFiltersAreConjunctive(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	yes := true

	apparel, _, err := uc.List(ctx, &dto.ListInput{Filters: &dto.FilterOptions{Category: []string{"Apparel"}}})
	require.NoError(t, err)
	bestSellers, _, err := uc.List(ctx, &dto.ListInput{Filters: &dto.FilterOptions{IsBestSeller: &yes}})
	require.NoError(t, err)
	both, _, err := uc.List(ctx, &dto.ListInput{Filters: &dto.FilterOptions{
		Category:     []string{"Apparel"},
		IsBestSeller: &yes,
	}})
	require.NoError(t, err)

	// The conjunction must be the intersection of the two single-dimension results.
	assert.Greater(t, len(apparel), len(both))
	assert.Greater(t, len(bestSellers), len(both))
	require.Len(t, both, 1)
	assert.Equal(t, "T-Shirts", both[0].Title)
}

func TestListPriceRangeFilterUsesVariantAndTierBounds(t *testing.T) {
	uc := newTestUseCase()
	max := 50.0

	got, _, err := uc.List(context.Background(), &dto.ListInput{Filters: &dto.FilterOptions{MaxPrice: &max}})
	require.NoError(t, err)

	for _, p := range got {
		if p.Pricing == nil {
			continue
		}
		// Every priced result must reach down to the requested ceiling.
		assert.LessOrEqual(t, minPriceOf(p), max, p.Title)
	}
	assert.Contains(t, titles(got), "Polaroids")
	assert.Contains(t, titles(got), "Stickers")
	assert.NotContains(t, titles(got), "Hoodies")
}

func TestListSizeFilterIntersection(t *testing.T) {
	uc := newTestUseCase()

	got, _, err := uc.List(context.Background(), &dto.ListInput{Filters: &dto.FilterOptions{Sizes: []string{"XL"}}})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p.Sizes, "XL")
	}
}

func TestListSortPrice(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	asc, _, err := uc.List(ctx, &dto.ListInput{SortBy: dto.SortPriceLow})
	require.NoError(t, err)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, basePriceOf(asc[i-1]), basePriceOf(asc[i]))
	}

	desc, _, err := uc.List(ctx, &dto.ListInput{SortBy: dto.SortPriceHigh})
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, basePriceOf(desc[i-1]), basePriceOf(desc[i]))
	}
}

func TestListSortNewestReversesInput(t *testing.T) {
	uc := newTestUseCase()

	all, _, err := uc.List(context.Background(), &dto.ListInput{SortBy: dto.SortRelevance})
	require.NoError(t, err)
	newest, _, err := uc.List(context.Background(), &dto.ListInput{SortBy: dto.SortNewest})
	require.NoError(t, err)

	require.Equal(t, len(all), len(newest))
	for i := range all {
		assert.Equal(t, all[i].ID, newest[len(newest)-1-i].ID)
	}
}

func TestListSortPopular(t *testing.T) {
	uc := newTestUseCase()

	got, _, err := uc.List(context.Background(), &dto.ListInput{SortBy: dto.SortPopular})
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, reviewCountOf(got[i-1]), reviewCountOf(got[i]))
	}
}

func TestGetBySlug(t *testing.T) {
	uc := newTestUseCase()

	p, err := uc.GetBySlug(context.Background(), "custom-mugs")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Custom Mugs", p.Title)

	missing, err := uc.GetBySlug(context.Background(), "no-such-product")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategories(t *testing.T) {
	uc := newTestUseCase()

	categories, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Contains(t, categories, "Apparel")
	assert.Contains(t, categories, "Drinkware")
}

func minPriceOf(p model.Product) float64 {
	min := p.Pricing.BasePrice
	for _, v := range p.Pricing.Variants {
		if v.Price < min {
			min = v.Price
		}
	}
	for _, tier := range p.Pricing.BulkPricing {
		if tier.PricePerUnit < min {
			min = tier.PricePerUnit
		}
	}
	return min
}

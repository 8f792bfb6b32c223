package usecase

import (
	"sort"
	"strings"

	"github.com/narendranaragani/printmaania/internal/catalog/dto"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/pricing"
)

// searchProducts keeps products whose searchable text contains the query,
// case-insensitively. A blank query keeps everything.
func searchProducts(products []model.Product, query string) []model.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	term := strings.ToLower(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		parts := []string{p.Title, p.ShortDescription, p.FullDescription, p.Category}
		parts = append(parts, p.Tags...)
		parts = append(parts, p.PrintingMethods...)
		if strings.Contains(strings.ToLower(strings.Join(parts, " ")), term) {
			out = append(out, p)
		}
	}
	return out
}

// filterProducts applies every provided dimension conjunctively.
func filterProducts(products []model.Product, f *dto.FilterOptions) []model.Product {
	if f == nil {
		return products
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilters(p model.Product, f *dto.FilterOptions) bool {
	if len(f.Category) > 0 && !containsString(f.Category, p.Category) {
		return false
	}

	// Price range overlap, using the displayable min/max.
	if p.Pricing != nil && (f.MinPrice != nil || f.MaxPrice != nil) {
		min, max := pricing.Range(p.Pricing.BasePrice, p.Pricing.Variants, p.Pricing.BulkPricing)
		if f.MinPrice != nil && max < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && min > *f.MaxPrice {
			return false
		}
	}

	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}

	if len(f.Colors) > 0 {
		names := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			names[i] = c.Name
		}
		if !intersects(names, f.Colors) {
			return false
		}
	}

	if len(f.Materials) > 0 && !intersects(p.Materials, f.Materials) {
		return false
	}

	if len(f.Tags) > 0 && !intersects(p.Tags, f.Tags) {
		return false
	}

	if f.IsBestSeller != nil && p.IsBestSeller != *f.IsBestSeller {
		return false
	}

	if f.IsTrending != nil && p.IsTrending != *f.IsTrending {
		return false
	}

	return true
}

// sortProducts re-orders stably by the given key. "newest" reverses the input
// order (the catalog is declared oldest-first); "relevance" preserves it.
func sortProducts(products []model.Product, sortBy dto.SortOption) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case dto.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return basePriceOf(sorted[i]) < basePriceOf(sorted[j])
		})
	case dto.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return basePriceOf(sorted[i]) > basePriceOf(sorted[j])
		})
	case dto.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingOf(sorted[i]) > ratingOf(sorted[j])
		})
	case dto.SortNewest:
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	case dto.SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return reviewCountOf(sorted[i]) > reviewCountOf(sorted[j])
		})
	case dto.SortRelevance:
		// Preserve search/filter order.
	}

	return sorted
}

func basePriceOf(p model.Product) float64 {
	if p.Pricing == nil {
		return 0
	}
	return p.Pricing.BasePrice
}

func ratingOf(p model.Product) float64 {
	if p.Reviews == nil {
		return 0
	}
	return p.Reviews.Rating
}

func reviewCountOf(p model.Product) int {
	if p.Reviews == nil {
		return 0
	}
	return p.Reviews.Count
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func intersects(values, wanted []string) bool {
	for _, v := range values {
		if containsString(wanted, v) {
			return true
		}
	}
	return false
}

package dto

type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
	SortPopular   SortOption = "popular"
)

// FilterOptions are conjunctive: every provided dimension must pass. An
// omitted dimension is not applied.
type FilterOptions struct {
	Category     []string
	MinPrice     *float64
	MaxPrice     *float64
	Sizes        []string
	Colors       []string
	Materials    []string
	Tags         []string
	IsBestSeller *bool
	IsTrending   *bool
}

type ListInput struct {
	Query   string
	Filters *FilterOptions
	SortBy  SortOption
}

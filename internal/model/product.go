package model

// Product is a catalog entry. The catalog is a fixed in-memory list loaded at
// startup; products are never mutated at runtime.
type Product struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	Title             string          `json:"title"`
	ShortDescription  string          `json:"short_description"`
	FullDescription   string          `json:"full_description,omitempty"`
	Images            []ProductImage  `json:"images,omitempty"`
	PrintingMethods   []string        `json:"printing_methods,omitempty"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	Colors            []ProductColor  `json:"colors,omitempty"`
	Sizes             []string        `json:"sizes,omitempty"`
	Materials         []string        `json:"materials,omitempty"`
	CustomOptions     []ProductOption `json:"custom_options,omitempty"`
	MinQuantity       int             `json:"min_quantity,omitempty"`
	BulkMinQuantity   int             `json:"bulk_min_quantity,omitempty"`
	Reviews           *ReviewSummary  `json:"reviews,omitempty"`
	Category          string          `json:"category"`
	Pricing           *Pricing        `json:"pricing,omitempty"`
	IsBestSeller      bool            `json:"is_best_seller,omitempty"`
	IsTrending        bool            `json:"is_trending,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
}

type ProductImage struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Type string `json:"type"` // "mockup" or "real"
}

type ProductColor struct {
	Name  string `json:"name"`
	Hex   string `json:"hex,omitempty"`
	Image string `json:"image,omitempty"`
}

type ProductOption struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type ReviewSummary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// Pricing describes how a product is priced: a base price, optional absolute
// per-variant overrides, optional quantity-tier bulk prices and a one-time
// setup fee charged once per order line.
type Pricing struct {
	BasePrice   float64        `json:"base_price"`
	Variants    []PriceVariant `json:"variants,omitempty"`
	BulkPricing []BulkTier     `json:"bulk_pricing,omitempty"`
	SetupFee    float64        `json:"setup_fee,omitempty"`
}

// PriceVariant maps a color/size/material combination to an absolute price.
// An unset field is a wildcard that matches any selection.
type PriceVariant struct {
	Color    string  `json:"color,omitempty"`
	Size     string  `json:"size,omitempty"`
	Material string  `json:"material,omitempty"`
	Price    float64 `json:"price"`
}

// BulkTier applies PricePerUnit once the ordered quantity reaches MinQuantity.
// Tiers are matched by descending MinQuantity; there is no interpolation.
type BulkTier struct {
	MinQuantity     int     `json:"min_quantity"`
	PricePerUnit    float64 `json:"price_per_unit"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

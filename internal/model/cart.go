package model

import "time"

// CartItem is one cart line. The cart keys lines by product id: adding the
// same product again increments the existing line's quantity, and changing a
// variant selection overwrites the line in place.
type CartItem struct {
	ProductID      string            `json:"product_id"`
	ProductSlug    string            `json:"product_slug"`
	ProductTitle   string            `json:"product_title"`
	Quantity       int               `json:"quantity"`
	Color          string            `json:"color,omitempty"`
	Size           string            `json:"size,omitempty"`
	Material       string            `json:"material,omitempty"`
	CustomOptions  map[string]string `json:"custom_options,omitempty"`
	DesignUploaded bool              `json:"design_uploaded"`
	DesignFileName string            `json:"design_file_name,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	UnitPrice      float64           `json:"unit_price,omitempty"`
}

// WishlistItem is a lightweight pointer into the catalog.
type WishlistItem struct {
	ProductID   string    `json:"product_id"`
	ProductSlug string    `json:"product_slug"`
	AddedAt     time.Time `json:"added_at"`
}

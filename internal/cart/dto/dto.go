package dto

import (
	"github.com/narendranaragani/printmaania/internal/model"
)

// LineTotal is one cart line with its computed price breakdown.
type LineTotal struct {
	Item     model.CartItem `json:"item"`
	Subtotal float64        `json:"subtotal"`
	Discount float64        `json:"discount"`
	SetupFee float64        `json:"setup_fee"`
	Savings  float64        `json:"savings,omitempty"`
	// UnitPrice is the effective per-unit price used for the subtotal.
	UnitPrice float64 `json:"unit_price"`
}

// CartTotals is the order-level aggregate across all lines.
type CartTotals struct {
	Lines          []LineTotal `json:"lines"`
	Subtotal       float64     `json:"subtotal"`
	Discount       float64     `json:"discount"`
	SetupFee       float64     `json:"setup_fee"`
	DeliveryCharge float64     `json:"delivery_charge"`
	Total          float64     `json:"total"`
}

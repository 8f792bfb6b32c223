// Package pricing holds the pure price computations: variant-aware unit
// pricing, quantity-tier bulk discounts, coupon application and displayable
// price ranges. Nothing here touches I/O.
package pricing

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/narendranaragani/printmaania/internal/model"
)

// Params is one line's pricing input. Quantity must be >= 1; the engine does
// not clamp.
type Params struct {
	BasePrice float64
	Quantity  int
	Color     string
	Size      string
	Material  string
	Variants  []model.PriceVariant
	BulkTiers []model.BulkTier
	SetupFee  float64

	// CouponDiscount >= 1 is a flat currency amount subtracted once;
	// 0 < CouponDiscount < 1 is a fraction of (subtotal + setup fee).
	CouponDiscount float64

	// ReconcileTierDiscount drops the tier percent-discount component, which
	// is otherwise computed from the pre-tier unit price on top of the
	// per-unit savings already reflected in the subtotal.
	ReconcileTierDiscount bool
}

// Quote is the computed price breakdown for one line.
type Quote struct {
	// UnitPrice is the effective per-unit price after bulk tiering.
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
	// Discount = tier percent discount scaled by quantity + coupon amount.
	Discount float64 `json:"discount"`
	SetupFee float64 `json:"setup_fee"`
	Total    float64 `json:"total"`
	// Savings is (pre-tier unit price - tier unit price) * quantity, reported
	// only when positive.
	Savings float64 `json:"savings,omitempty"`
}

// Calculate resolves the unit price for the selected variant, applies the
// deepest bulk tier the quantity reaches, then the coupon. The total is
// clamped at zero and rounded to the nearest whole currency unit.
func Calculate(p Params) Quote {
	unitPrice := p.BasePrice
	if v, ok := matchVariant(p.Variants, p.Color, p.Size, p.Material); ok {
		unitPrice = v.Price
	}

	finalUnitPrice := unitPrice
	var tierDiscountPerUnit, savings float64

	if tier, ok := matchTier(p.BulkTiers, p.Quantity); ok {
		finalUnitPrice = tier.PricePerUnit
		savings = (unitPrice - finalUnitPrice) * float64(p.Quantity)
		if tier.DiscountPercent > 0 && !p.ReconcileTierDiscount {
			tierDiscountPerUnit = unitPrice * tier.DiscountPercent / 100
		}
	}

	subtotal := finalUnitPrice * float64(p.Quantity)

	var couponAmount float64
	if p.CouponDiscount > 0 {
		if p.CouponDiscount >= 1 {
			couponAmount = p.CouponDiscount
		} else {
			couponAmount = (subtotal + p.SetupFee) * p.CouponDiscount
		}
	}

	total := math.Max(0, subtotal+p.SetupFee-couponAmount)

	q := Quote{
		UnitPrice: finalUnitPrice,
		Subtotal:  subtotal,
		Discount:  tierDiscountPerUnit*float64(p.Quantity) + couponAmount,
		SetupFee:  p.SetupFee,
		Total:     math.Round(total),
	}
	if savings > 0 {
		q.Savings = math.Round(savings)
	}
	return q
}

// matchVariant walks the variant list in declaration order and returns the
// first entry every axis of which accepts the selection. An axis accepts when
// the variant leaves it unset (wildcard), the shopper made no selection for
// it, or both sides are equal. Declaration order is the tie-break when
// several variants match.
func matchVariant(variants []model.PriceVariant, color, size, material string) (model.PriceVariant, bool) {
	axisAccepts := func(variantVal, selected string) bool {
		return variantVal == "" || selected == "" || variantVal == selected
	}
	for _, v := range variants {
		if axisAccepts(v.Color, color) && axisAccepts(v.Size, size) && axisAccepts(v.Material, material) {
			return v, true
		}
	}
	return model.PriceVariant{}, false
}

// matchTier picks the tier with the largest MinQuantity that the quantity
// still reaches.
func matchTier(tiers []model.BulkTier, quantity int) (model.BulkTier, bool) {
	if len(tiers) == 0 {
		return model.BulkTier{}, false
	}
	sorted := make([]model.BulkTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity > sorted[j].MinQuantity
	})
	for _, tier := range sorted {
		if quantity >= tier.MinQuantity {
			return tier, true
		}
	}
	return model.BulkTier{}, false
}

// Range derives the displayable min/max price for a catalog entry. Variant
// prices widen both bounds; the deepest bulk tier can only lower the minimum.
func Range(basePrice float64, variants []model.PriceVariant, tiers []model.BulkTier) (min, max float64) {
	min, max = basePrice, basePrice

	for _, v := range variants {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}

	if len(tiers) > 0 {
		deepest := tiers[0]
		for _, t := range tiers[1:] {
			if t.MinQuantity > deepest.MinQuantity {
				deepest = t
			}
		}
		if deepest.PricePerUnit < min {
			min = deepest.PricePerUnit
		}
	}

	return min, max
}

// FormatPrice renders a rupee amount with Indian digit grouping, e.g.
// "₹ 1,23,450".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(math.Round(price*1000)/1000, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := "₹ " + groupIndian(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// groupIndian inserts commas after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	out := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return rest + "," + out
}

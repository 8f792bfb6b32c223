package dto

import "github.com/narendranaragani/printmaania/internal/model"

// PlaceOrderInput carries the checkout form plus the cart lines to snapshot.
// Line prices are recomputed server side; client-sent totals are ignored.
type PlaceOrderInput struct {
	UserID            string           `json:"-"`
	CustomerName      string           `json:"customer_name" binding:"required"`
	Phone             string           `json:"phone" binding:"required"`
	Email             string           `json:"email,omitempty"`
	Address           string           `json:"address,omitempty"`
	Items             []model.CartItem `json:"items" binding:"required,min=1,dive"`
	CouponCode        string           `json:"coupon_code,omitempty"`
	CouponDiscount    float64          `json:"coupon_discount,omitempty"`
	PaymentMethod     string           `json:"payment_method,omitempty"`
	EstimatedDelivery string           `json:"estimated_delivery,omitempty"`
	ClearCart         bool             `json:"clear_cart,omitempty"`
}

type TransitionInput struct {
	Status  model.OrderStatus `json:"status" binding:"required"`
	Message string            `json:"message,omitempty"`
}

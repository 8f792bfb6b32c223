package model

import "time"

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "order_received"
	OrderStatusPrinting  OrderStatus = "printing"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderItem snapshots the product at checkout time so historical orders stay
// stable when catalog prices change later.
type OrderItem struct {
	ProductID     string            `json:"product_id"`
	ProductTitle  string            `json:"product_title"`
	Quantity      int               `json:"quantity"`
	UnitPrice     float64           `json:"unit_price"`
	Color         string            `json:"color,omitempty"`
	Size          string            `json:"size,omitempty"`
	Material      string            `json:"material,omitempty"`
	CustomOptions map[string]string `json:"custom_options,omitempty"`
	Subtotal      float64           `json:"subtotal"`
}

// TimelineEntry is an append-only record of an order's status at a point in
// time. The first entry is always written at order creation with
// OrderStatusReceived.
type TimelineEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Message   string      `json:"message,omitempty"`
}

// Order is created once at checkout; its item list is immutable afterwards.
// Status transitions append timeline entries and bump UpdatedAt.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            string          `json:"user_id,omitempty"`
	CustomerName      string          `json:"customer_name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email,omitempty"`
	Address           string          `json:"address,omitempty"`
	Items             []OrderItem     `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Discount          float64         `json:"discount"`
	SetupFee          float64         `json:"setup_fee"`
	DeliveryCharge    float64         `json:"delivery_charge"`
	Total             float64         `json:"total"`
	CouponCode        string          `json:"coupon_code,omitempty"`
	Status            OrderStatus     `json:"status"`
	Timeline          []TimelineEntry `json:"timeline"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OrderSummary is the dashboard list row.
type OrderSummary struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	ItemCount   int         `json:"item_count"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	CreatedAt   time.Time   `json:"created_at"`
}

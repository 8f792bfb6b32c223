package events

import (
	"time"

	"github.com/narendranaragani/printmaania/internal/model"
)

type OrderCreatedEvent struct {
	EventID     string            `json:"event_id"`
	OrderID     string            `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	UserID      string            `json:"user_id,omitempty"`
	TotalAmount float64           `json:"total_amount"`
	Items       []model.OrderItem `json:"items"`
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
}

type OrderStatusChangedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

package order

import (
	"context"

	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/order/dto"
)

type UseCase interface {
	// PlaceOrder snapshots the cart into an order, seeds its timeline and
	// persists it. The item list is immutable afterwards.
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.OrderSummary, error)
	// Transition appends one timeline entry and updates the order status.
	// Any status is accepted; there is no backward/repeat validation.
	Transition(ctx context.Context, orderID string, status model.OrderStatus, message string) (*model.Order, error)
}

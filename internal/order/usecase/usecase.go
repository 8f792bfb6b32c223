package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/internal/cart"
	"github.com/narendranaragani/printmaania/internal/catalog"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/order"
	"github.com/narendranaragani/printmaania/internal/order/dto"
	"github.com/narendranaragani/printmaania/internal/order/events"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

type Options struct {
	// DefaultDeliveryEstimate is used when neither the request nor the
	// catalog supplies an estimate string, e.g. "7 days".
	DefaultDeliveryEstimate string
}

type orderUseCase struct {
	repo      order.Repository
	cartUC    cart.UseCase
	cartStore cart.Store
	catalog   catalog.Repository
	publisher events.Publisher
	opts      Options
	logger    logger.ZapLogger
}

// NewOrderUseCase wires the checkout flow. cartStore and publisher may be
// nil; clearing the cart and event publishing then become no-ops.
func NewOrderUseCase(repo order.Repository, cartUC cart.UseCase, cartStore cart.Store, catalogRepo catalog.Repository, publisher events.Publisher, opts Options, log logger.ZapLogger) order.UseCase {
	if opts.DefaultDeliveryEstimate == "" {
		opts.DefaultDeliveryEstimate = "7 days"
	}
	return &orderUseCase{
		repo:      repo,
		cartUC:    cartUC,
		cartStore: cartStore,
		catalog:   catalogRepo,
		publisher: publisher,
		opts:      opts,
		logger:    log,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error) {
	totals, err := uc.cartUC.Totals(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(totals.Lines))
	for _, line := range totals.Lines {
		// The captured cart price wins over the computed one when present.
		unitPrice := line.Item.UnitPrice
		if unitPrice == 0 {
			unitPrice = line.UnitPrice
		}
		items = append(items, model.OrderItem{
			ProductID:     line.Item.ProductID,
			ProductTitle:  line.Item.ProductTitle,
			Quantity:      line.Item.Quantity,
			UnitPrice:     unitPrice,
			Color:         line.Item.Color,
			Size:          line.Item.Size,
			Material:      line.Item.Material,
			CustomOptions: line.Item.CustomOptions,
			Subtotal:      line.Subtotal,
		})
	}

	discount := totals.Discount + couponAmount(input.CouponDiscount, totals.Subtotal+totals.SetupFee)
	total := math.Round(math.Max(0, totals.Subtotal+totals.SetupFee+totals.DeliveryCharge-discount))

	now := time.Now()
	eta := uc.estimatedDelivery(ctx, input, now)

	o := &model.Order{
		ID:                generateOrderID(now),
		OrderNumber:       generateOrderNumber(now),
		UserID:            input.UserID,
		CustomerName:      input.CustomerName,
		Phone:             input.Phone,
		Email:             input.Email,
		Address:           input.Address,
		Items:             items,
		Subtotal:          totals.Subtotal,
		Discount:          discount,
		SetupFee:          totals.SetupFee,
		DeliveryCharge:    totals.DeliveryCharge,
		Total:             total,
		CouponCode:        input.CouponCode,
		Status:            model.OrderStatusReceived,
		PaymentStatus:     model.PaymentStatusPending,
		PaymentMethod:     input.PaymentMethod,
		EstimatedDelivery: &eta,
		CreatedAt:         now,
		UpdatedAt:         now,
		Timeline: []model.TimelineEntry{{
			Status:    model.OrderStatusReceived,
			Timestamp: now,
			Message:   "Order received and payment confirmed",
		}},
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if input.ClearCart && uc.cartStore != nil {
		if err := uc.cartStore.Clear(); err != nil {
			uc.logger.Warn("failed to clear cart after checkout", zap.String("order_id", o.ID), zap.Error(err))
		}
	}

	uc.publishCreated(ctx, o)

	uc.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total))

	return o, nil
}

func (uc *orderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *orderUseCase) ListByUser(ctx context.Context, userID string) ([]model.OrderSummary, error) {
	orders, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.OrderSummary, 0, len(orders))
	for _, o := range orders {
		count := 0
		for _, item := range o.Items {
			count += item.Quantity
		}
		summaries = append(summaries, model.OrderSummary{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			ItemCount:   count,
			Status:      o.Status,
			Total:       o.Total,
			CreatedAt:   o.CreatedAt,
		})
	}
	return summaries, nil
}

func (uc *orderUseCase) Transition(ctx context.Context, orderID string, status model.OrderStatus, message string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if message == "" {
		message = fmt.Sprintf("Order status updated to %s", status)
	}

	now := time.Now()
	o.Status = status
	o.UpdatedAt = now
	o.Timeline = append(o.Timeline, model.TimelineEntry{
		Status:    status,
		Timestamp: now,
		Message:   message,
	})

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		event := events.OrderStatusChangedEvent{
			EventID:   uuid.New().String(),
			OrderID:   o.ID,
			Status:    string(status),
			Message:   message,
			Timestamp: now,
		}
		if err := uc.publisher.PublishStatusChanged(ctx, event); err != nil {
			uc.logger.Warn("status event publish failed", zap.String("order_id", o.ID), zap.Error(err))
		}
	}

	return o, nil
}

func (uc *orderUseCase) publishCreated(ctx context.Context, o *model.Order) {
	if uc.publisher == nil {
		return
	}

	event := events.OrderCreatedEvent{
		EventID:     uuid.New().String(),
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		TotalAmount: o.Total,
		Items:       o.Items,
		Status:      string(o.Status),
		Timestamp:   o.CreatedAt,
	}
	// Checkout already succeeded; a broker outage must not fail it.
	if err := uc.publisher.PublishOrderCreated(ctx, event); err != nil {
		uc.logger.Warn("order event publish failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

// estimatedDelivery resolves the estimate string in order of preference:
// the request, the first item's catalog entry, the configured default.
func (uc *orderUseCase) estimatedDelivery(ctx context.Context, input *dto.PlaceOrderInput, now time.Time) time.Time {
	estimate := input.EstimatedDelivery
	if estimate == "" && uc.catalog != nil && len(input.Items) > 0 {
		first := input.Items[0]
		if p, err := uc.catalog.Resolve(ctx, first.ProductSlug, first.ProductID); err == nil && p != nil {
			estimate = p.EstimatedDelivery
		}
	}
	if estimate == "" {
		estimate = uc.opts.DefaultDeliveryEstimate
	}
	return now.AddDate(0, 0, parseDeliveryDays(estimate))
}

var digitsRe = regexp.MustCompile(`\d+`)

// parseDeliveryDays pulls the first integer out of an estimate string like
// "5-7 days". A string without a number means 7 days.
func parseDeliveryDays(estimate string) int {
	if m := digitsRe.FindString(estimate); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return 7
}

// couponAmount treats values of 1 and above as a flat rupee discount and
// anything below 1 as a fraction of the pre-delivery amount.
func couponAmount(coupon, base float64) float64 {
	if coupon <= 0 {
		return 0
	}
	if coupon >= 1 {
		return coupon
	}
	return base * coupon
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func generateOrderID(now time.Time) string {
	var b strings.Builder
	b.WriteString("ORD-")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < 6; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return strings.ToUpper(b.String())
}

func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("PM%s%04d", now.Format("20060102"), rand.Intn(10000))
}

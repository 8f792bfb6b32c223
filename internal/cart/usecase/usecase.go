package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/internal/cart"
	"github.com/narendranaragani/printmaania/internal/cart/dto"
	"github.com/narendranaragani/printmaania/internal/catalog"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/pricing"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

// Options tune the order-level aggregation.
type Options struct {
	// FreeDeliveryAbove is the subtotal above which delivery is free.
	FreeDeliveryAbove float64
	// DeliveryFee is the flat charge below the threshold.
	DeliveryFee float64
	// ReconcileTierDiscount forwards to the pricing engine.
	ReconcileTierDiscount bool
}

type cartUseCase struct {
	catalog catalog.Repository
	opts    Options
	logger  logger.ZapLogger
}

func NewCartUseCase(catalogRepo catalog.Repository, opts Options, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		catalog: catalogRepo,
		opts:    opts,
		logger:  log,
	}
}

// Totals prices each line via the pricing engine and folds the results. A
// line whose product is gone from the catalog, or has no pricing block,
// degrades to the captured unit price times quantity with zero discount and
// setup fee rather than failing.
func (uc *cartUseCase) Totals(ctx context.Context, items []model.CartItem) (*dto.CartTotals, error) {
	totals := &dto.CartTotals{Lines: make([]dto.LineTotal, 0, len(items))}

	for _, item := range items {
		line := uc.priceLine(ctx, item)
		totals.Lines = append(totals.Lines, line)
		totals.Subtotal += line.Subtotal
		totals.Discount += line.Discount
		totals.SetupFee += line.SetupFee
	}

	if totals.Subtotal > uc.opts.FreeDeliveryAbove {
		totals.DeliveryCharge = 0
	} else {
		totals.DeliveryCharge = uc.opts.DeliveryFee
	}
	totals.Total = totals.Subtotal + totals.SetupFee + totals.DeliveryCharge - totals.Discount

	return totals, nil
}

func (uc *cartUseCase) priceLine(ctx context.Context, item model.CartItem) dto.LineTotal {
	product, err := uc.catalog.Resolve(ctx, item.ProductSlug, item.ProductID)
	if err != nil {
		uc.logger.Warn("catalog lookup failed for cart line",
			zap.String("product_id", item.ProductID),
			zap.Error(err))
		product = nil
	}

	if product == nil || product.Pricing == nil {
		return dto.LineTotal{
			Item:      item,
			Subtotal:  item.UnitPrice * float64(item.Quantity),
			UnitPrice: item.UnitPrice,
		}
	}

	quote := pricing.Calculate(pricing.Params{
		BasePrice:             product.Pricing.BasePrice,
		Quantity:              item.Quantity,
		Color:                 item.Color,
		Size:                  item.Size,
		Material:              item.Material,
		Variants:              product.Pricing.Variants,
		BulkTiers:             product.Pricing.BulkPricing,
		SetupFee:              product.Pricing.SetupFee,
		ReconcileTierDiscount: uc.opts.ReconcileTierDiscount,
	})

	return dto.LineTotal{
		Item:      item,
		Subtotal:  quote.Subtotal,
		Discount:  quote.Discount,
		SetupFee:  quote.SetupFee,
		Savings:   quote.Savings,
		UnitPrice: quote.UnitPrice,
	}
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendranaragani/printmaania/internal/cart/dto"
	"github.com/narendranaragani/printmaania/internal/catalog/repository"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

func newTestUseCase(opts Options) *cartUseCase {
	repo := repository.NewMemoryRepository(repository.SeedProducts())
	return &cartUseCase{catalog: repo, opts: opts, logger: logger.NewNop()}
}

func defaultOpts() Options {
	return Options{FreeDeliveryAbove: 500, DeliveryFee: 50}
}

func TestTotalsSingleLine(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "custom-mugs", ProductSlug: "custom-mugs", Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, totals.Lines, 1)
	assert.Equal(t, 299.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.SetupFee)
	assert.Equal(t, 50.0, totals.DeliveryCharge) // 299 is under the threshold
	assert.Equal(t, 399.0, totals.Total)
}

func TestTotalsIdentityHolds(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "t-shirts", ProductSlug: "t-shirts", Quantity: 30, Size: "L"},
		{ProductID: "custom-mugs", ProductSlug: "custom-mugs", Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t,
		totals.Subtotal+totals.SetupFee+totals.DeliveryCharge-totals.Discount,
		totals.Total)
}

func TestTotalsDeliveryThreshold(t *testing.T) {
	uc := newTestUseCase(defaultOpts())
	ctx := context.Background()

	// Unknown product with a captured unit price pins the subtotal exactly.
	at := func(subtotal float64) *dto.CartTotals {
		totals, err := uc.Totals(ctx, []model.CartItem{
			{ProductID: "gone", ProductSlug: "gone", Quantity: 1, UnitPrice: subtotal},
		})
		require.NoError(t, err)
		return totals
	}

	under := at(450)
	assert.Equal(t, 50.0, under.DeliveryCharge)
	assert.Equal(t, 500.0, under.Total)

	boundary := at(500)
	assert.Equal(t, 50.0, boundary.DeliveryCharge) // strictly greater than, 500 still pays

	over := at(501)
	assert.Equal(t, 0.0, over.DeliveryCharge)
	assert.Equal(t, 501.0, over.Total)
}

func TestTotalsMissingProductDegrades(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "removed-product", Quantity: 3, UnitPrice: 100},
	})
	require.NoError(t, err)

	require.Len(t, totals.Lines, 1)
	assert.Equal(t, 300.0, totals.Lines[0].Subtotal)
	assert.Equal(t, 0.0, totals.Lines[0].Discount)
	assert.Equal(t, 0.0, totals.Lines[0].SetupFee)
}

func TestTotalsMissingPricingBlockDegrades(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	// Keychains have no pricing block in the catalog.
	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "keychains", ProductSlug: "keychains", Quantity: 2, UnitPrice: 149},
	})
	require.NoError(t, err)

	require.Len(t, totals.Lines, 1)
	assert.Equal(t, 298.0, totals.Lines[0].Subtotal)
	assert.Equal(t, 0.0, totals.Lines[0].SetupFee)
}

func TestTotalsVariantSelectionApplied(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "t-shirts", ProductSlug: "t-shirts", Quantity: 1, Size: "XXL"},
	})
	require.NoError(t, err)

	assert.Equal(t, 649.0, totals.Lines[0].UnitPrice)
}

func TestTotalsBulkTierWithReconcileFlag(t *testing.T) {
	items := []model.CartItem{{ProductID: "t-shirts", ProductSlug: "t-shirts", Quantity: 30, Size: "S"}}

	plain, err := newTestUseCase(defaultOpts()).Totals(context.Background(), items)
	require.NoError(t, err)

	reconciledOpts := defaultOpts()
	reconciledOpts.ReconcileTierDiscount = true
	reconciled, err := newTestUseCase(reconciledOpts).Totals(context.Background(), items)
	require.NoError(t, err)

	// Same tier price either way; only the percent discount component differs.
	assert.Equal(t, plain.Subtotal, reconciled.Subtotal)
	assert.InDelta(t, 1497.0, plain.Discount, 1e-6) // 499 * 10% * 30
	assert.Equal(t, 0.0, reconciled.Discount)
	assert.Equal(t, plain.Lines[0].Savings, reconciled.Lines[0].Savings)
}

func TestTotalsResolvesByIDWhenSlugMissing(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), []model.CartItem{
		{ProductID: "custom-mugs", Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 299.0, totals.Lines[0].Subtotal)
}

func TestTotalsEmptyCart(t *testing.T) {
	uc := newTestUseCase(defaultOpts())

	totals, err := uc.Totals(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.DeliveryCharge) // 0 is under the threshold
	assert.Equal(t, 50.0, totals.Total)
}

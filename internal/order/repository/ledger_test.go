package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/order"
	"github.com/narendranaragani/printmaania/pkg/storage"
)

func testOrder(id, userID string) *model.Order {
	now := time.Now()
	return &model.Order{
		ID:          id,
		OrderNumber: "PM202601010001",
		UserID:      userID,
		Status:      model.OrderStatusReceived,
		Total:       399,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestLedgerCreateAndFind(t *testing.T) {
	repo, err := NewLedgerRepository(storage.NewMemoryStore())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testOrder("ORD-A", "u1")))

	got, err := repo.FindByID(ctx, "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, "ORD-A", got.ID)

	_, err = repo.FindByID(ctx, "ORD-MISSING")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestLedgerNewestFirst(t *testing.T) {
	repo, err := NewLedgerRepository(storage.NewMemoryStore())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testOrder("ORD-A", "u1")))
	require.NoError(t, repo.Create(ctx, testOrder("ORD-B", "u1")))
	require.NoError(t, repo.Create(ctx, testOrder("ORD-C", "u2")))

	mine, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "ORD-B", mine[0].ID)
	assert.Equal(t, "ORD-A", mine[1].ID)

	all, err := repo.FindByUser(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLedgerUpdatePersists(t *testing.T) {
	backend := storage.NewMemoryStore()

	repo, err := NewLedgerRepository(backend)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testOrder("ORD-A", "u1")))

	got, err := repo.FindByID(ctx, "ORD-A")
	require.NoError(t, err)
	got.Status = model.OrderStatusShipped
	require.NoError(t, repo.Update(ctx, got))

	// A fresh repository over the same backend sees the update.
	reopened, err := NewLedgerRepository(backend)
	require.NoError(t, err)
	again, err := reopened.FindByID(ctx, "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, again.Status)

	err = repo.Update(ctx, testOrder("ORD-MISSING", "u1"))
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

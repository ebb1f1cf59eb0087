package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

func newTestStore() *Store {
	return NewStore(&cfg.StoreCfg{Seed: true})
}

func TestAdjustStock_Concurrent(t *testing.T) {
	store := newTestStore()
	repo := NewInventoryRepo(store)
	ctx := context.Background()

	// Koliko Runner V1 стартует с остатком 45.
	var wg sync.WaitGroup
	for _, adj := range []int64{5, 3} {
		wg.Add(1)
		go func(adj int64) {
			defer wg.Done()
			_, err := repo.AdjustStock(ctx, usecase.NewAdjustStockReq("1", adj, domain.ReasonRestock, "admin@koliko.com"))
			assert.NoError(t, err)
		}(adj)
	}
	wg.Wait()

	products, err := NewProductRepo(store).GetAll(ctx)
	require.NoError(t, err)

	for _, p := range products {
		if p.ID == "1" {
			assert.Equal(t, int64(53), p.Stock)
			return
		}
	}
	t.Fatal("product 1 not found")
}

func TestAdjustStock_AppendsLogAndOutbox(t *testing.T) {
	store := newTestStore()
	repo := NewInventoryRepo(store)
	ctx := context.Background()

	before, err := repo.GetLogs(ctx)
	require.NoError(t, err)

	notified := false
	store.SetNotifier(func() { notified = true })

	log, err := repo.AdjustStock(ctx, usecase.NewAdjustStockReq("4", -10, domain.ReasonDamage, "admin@koliko.com"))
	require.NoError(t, err)

	assert.Equal(t, "Summer Breeze Sandal", log.ProductName)
	assert.Equal(t, int64(-10), log.Change)
	assert.Equal(t, int64(90), log.CurrentStock)
	assert.True(t, notified)

	after, err := repo.GetLogs(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	// новая запись встаёт в начало журнала
	assert.Equal(t, log.ID, after[0].ID)

	events, err := NewOutboxEventRepo(store).GetAndMarkAsProcessing(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, usecase.StockChanged, events[0].EventType)
	assert.Equal(t, "4", events[0].EntityID)
}

func TestAdjustStock_UnknownProduct(t *testing.T) {
	store := newTestStore()
	repo := NewInventoryRepo(store)

	_, err := repo.AdjustStock(context.Background(), usecase.NewAdjustStockReq("missing", 1, domain.ReasonRestock, "admin@koliko.com"))
	assert.ErrorIs(t, err, e.ErrNotFound)

	logs, err := repo.GetLogs(context.Background())
	require.NoError(t, err)
	assert.Len(t, logs, 4)
}

func TestOrderUpdate_PatchUnion(t *testing.T) {
	store := newTestStore()
	repo := NewOrderRepo(store)
	ctx := context.Background()

	status := domain.OrderShipped
	_, err := repo.Update(ctx, "ORD-7722", &usecase.OrderPatch{Status: &status})
	require.NoError(t, err)

	tracking := "TRK-998877"
	updated, err := repo.Update(ctx, "ORD-7722", &usecase.OrderPatch{TrackingNumber: &tracking})
	require.NoError(t, err)

	// второй патч не затирает поле первого
	assert.Equal(t, domain.OrderShipped, updated.Status)
	assert.Equal(t, "TRK-998877", updated.TrackingNumber)
}

func TestOrderUpdate_NotFoundLeavesStateUnchanged(t *testing.T) {
	store := newTestStore()
	repo := NewOrderRepo(store)
	ctx := context.Background()

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	status := domain.OrderDelivered
	_, err = repo.Update(ctx, "ORD-0000", &usecase.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, e.ErrNotFound)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPromotionToggle_SelfInverse(t *testing.T) {
	store := newTestStore()
	repo := NewPromotionRepo(store)
	ctx := context.Background()

	first, err := repo.Toggle(ctx, "PRO-1")
	require.NoError(t, err)
	assert.True(t, first.Disabled)

	second, err := repo.Toggle(ctx, "PRO-1")
	require.NoError(t, err)
	assert.False(t, second.Disabled)
}

func TestRepairCreate_UniqueIDs(t *testing.T) {
	store := newTestStore()
	repo := NewRepairRepo(store)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := repo.Create(ctx, &domain.RepairRequest{
			CustomerName: "Test Customer",
			ProductName:  "Koliko Runner V1",
			Status:       domain.RepairPending,
		})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestProductDelete(t *testing.T) {
	store := newTestStore()
	repo := NewProductRepo(store)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "2"))
	assert.ErrorIs(t, repo.Delete(ctx, "2"), e.ErrNotFound)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestOutbox_ProcessingNotRedelivered(t *testing.T) {
	store := newTestStore()
	inventory := NewInventoryRepo(store)
	outbox := NewOutboxEventRepo(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := inventory.AdjustStock(ctx, usecase.NewAdjustStockReq("1", 1, domain.ReasonRestock, "admin@koliko.com"))
		require.NoError(t, err)
	}

	first, err := outbox.GetAndMarkAsProcessing(ctx, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := outbox.GetAndMarkAsProcessing(ctx, 10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[1].ID, second[0].ID)

	require.NoError(t, outbox.MarkAsProcessed(ctx, first[0].ID))

	rest, err := outbox.GetAndMarkAsProcessing(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

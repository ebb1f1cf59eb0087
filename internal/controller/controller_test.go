package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Koliko Runner V1", Price: 8999, Category: "Sneakers", Stock: 45, Status: domain.ProductActive},
		{ID: "2", Name: "Urban Street Loafer", Price: 12050, Category: "Loafers", Stock: 12, Status: domain.ProductActive},
		{ID: "3", Name: "Velocity Trainer", Price: 9500, Category: "Sneakers", Stock: 0, Status: domain.ProductInactive},
	}
}

func loadedController(t *testing.T) *Controller[domain.Product] {
	t.Helper()

	c := New(func(ctx context.Context) ([]domain.Product, error) {
		return testProducts(), nil
	})
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, StateLoaded, c.State())

	return c
}

func TestLoad_ReplacesNotMerges(t *testing.T) {
	pages := [][]domain.Product{
		testProducts(),
		{{ID: "9", Name: "Fresh Arrival", Price: 5000, Stock: 3, Status: domain.ProductActive}},
	}
	call := 0

	c := New(func(ctx context.Context) ([]domain.Product, error) {
		items := pages[call]
		call++
		return items, nil
	})

	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.Items(), 3)

	require.NoError(t, c.Load(context.Background()))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].ID)
}

func TestLoad_FailureKeepsStaleItems(t *testing.T) {
	loadErr := errors.New("backend unavailable")
	failing := false

	c := New(func(ctx context.Context) ([]domain.Product, error) {
		if failing {
			return nil, loadErr
		}
		return testProducts(), nil
	})

	require.NoError(t, c.Load(context.Background()))

	failing = true
	err := c.Load(context.Background())
	require.ErrorIs(t, err, loadErr)

	assert.Equal(t, StateFailed, c.State())
	assert.ErrorIs(t, c.LastError(), loadErr)
	assert.Len(t, c.Items(), 3, "stale items survive a failed reload")

	// повторная загрузка после восстановления
	failing = false
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, StateLoaded, c.State())
	assert.NoError(t, c.LastError())
}

func TestVisible_FilterDoesNotMutate(t *testing.T) {
	c := loadedController(t)

	c.SetFilter(func(p domain.Product) bool { return p.Status == domain.ProductActive })
	visible := c.Visible()
	require.Len(t, visible, 2)
	for _, p := range visible {
		assert.Equal(t, domain.ProductActive, p.Status)
	}

	assert.Len(t, c.Items(), 3, "filter is a view, not a mutation")

	c.SetFilter(nil)
	assert.Len(t, c.Visible(), 3)
}

func TestSelection_FollowsRecordByID(t *testing.T) {
	c := loadedController(t)

	assert.False(t, c.Select("missing"))
	require.True(t, c.Select("2"))

	updated := testProducts()[1]
	updated.Stock = 99
	err := c.ApplyOptimistic(context.Background(), updated, func(ctx context.Context) (domain.Product, error) {
		return updated, nil
	})
	require.NoError(t, err)

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(99), selected.Stock, "selection reflects the latest version of the record")

	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestSave_ReplacesEntryOnlyOnSuccess(t *testing.T) {
	c := loadedController(t)

	updated := testProducts()[1]
	updated.Price = 9999
	require.NoError(t, c.Save(context.Background(), func(ctx context.Context) (domain.Product, error) {
		// коллекция не трогается до ответа
		assert.Equal(t, int64(12050), c.Items()[1].Price)
		return updated, nil
	}))
	assert.Equal(t, int64(9999), c.Items()[1].Price)

	saveErr := errors.New("update rejected")
	err := c.Save(context.Background(), func(ctx context.Context) (domain.Product, error) {
		return domain.Product{}, saveErr
	})
	require.ErrorIs(t, err, saveErr)
	assert.Equal(t, int64(9999), c.Items()[1].Price, "failed save leaves local state untouched")
}

func TestApplyOptimistic_CommitConfirms(t *testing.T) {
	c := loadedController(t)

	optimistic := testProducts()[0]
	optimistic.Stock = 50

	confirmed := optimistic
	confirmed.Stock = 53 // сервер видел ещё одну корректировку

	err := c.ApplyOptimistic(context.Background(), optimistic, func(ctx context.Context) (domain.Product, error) {
		return confirmed, nil
	})
	require.NoError(t, err)

	items := c.Items()
	assert.Equal(t, int64(53), items[0].Stock, "server version wins over the optimistic one")
	assert.False(t, c.Saving())
}

func TestApplyOptimistic_RollbackOnError(t *testing.T) {
	c := loadedController(t)

	optimistic := testProducts()[0]
	optimistic.Stock = 500

	commitErr := errors.New("stock update rejected")
	err := c.ApplyOptimistic(context.Background(), optimistic, func(ctx context.Context) (domain.Product, error) {
		// запись уже подменена на время commit
		assert.Equal(t, int64(500), c.Items()[0].Stock)
		return domain.Product{}, commitErr
	})
	require.ErrorIs(t, err, commitErr)

	assert.Equal(t, int64(45), c.Items()[0].Stock, "rollback restores the snapshot")
	assert.False(t, c.Saving())
	assert.ErrorIs(t, c.LastError(), commitErr)
}

func TestApplyOptimistic_UnknownRecord(t *testing.T) {
	c := loadedController(t)

	ghost := domain.Product{ID: "404", Name: "Ghost"}
	err := c.ApplyOptimistic(context.Background(), ghost, func(ctx context.Context) (domain.Product, error) {
		t.Fatal("commit must not run for an unknown record")
		return ghost, nil
	})
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestRemove_RollbackOnError(t *testing.T) {
	c := loadedController(t)
	require.True(t, c.Select("2"))

	commitErr := errors.New("delete rejected")
	err := c.Remove(context.Background(), "2", func(ctx context.Context) error {
		assert.Len(t, c.Items(), 2)
		return commitErr
	})
	require.ErrorIs(t, err, commitErr)

	assert.Len(t, c.Items(), 3)

	// выбор не возвращается после отката, пользователь выбирает заново
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestAdd_AppendsConfirmedRecord(t *testing.T) {
	c := loadedController(t)

	created := domain.Product{ID: "42", Name: "Trail Blazer", Price: 11000, Stock: 7, Status: domain.ProductActive}
	err := c.Add(context.Background(), func(ctx context.Context) (domain.Product, error) {
		return created, nil
	})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "42", items[3].ID)
}

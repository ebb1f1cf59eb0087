package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type OrderRepo struct {
	store *Store
}

func NewOrderRepo(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

func (r *OrderRepo) GetAll(ctx context.Context) ([]domain.Order, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders := make([]domain.Order, len(r.store.orders))
	copy(orders, r.store.orders)

	return orders, nil
}

// Update применяет к заказу только заполненные поля патча.
// Чтение и запись происходят под одним мьютексом: конкурентные патчи
// разных полей не затирают друг друга.
func (r *OrderRepo) Update(ctx context.Context, id string, patch *usecase.OrderPatch) (*domain.Order, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.orders {
		if r.store.orders[i].ID != id {
			continue
		}

		if patch.Status != nil {
			r.store.orders[i].Status = *patch.Status
		}
		if patch.TrackingNumber != nil {
			r.store.orders[i].TrackingNumber = *patch.TrackingNumber
		}
		if patch.EstimatedDeliveryDate != nil {
			r.store.orders[i].EstimatedDeliveryDate = *patch.EstimatedDeliveryDate
		}

		updated := r.store.orders[i]
		return &updated, nil
	}

	return nil, e.ErrNotFound
}

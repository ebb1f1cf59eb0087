package memstore

import (
	"context"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

const logDateLayout = "2006-01-02 15:04"

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// GetLogs возвращает журнал корректировок, новые записи первыми.
func (r *InventoryRepo) GetLogs(ctx context.Context) ([]domain.InventoryLog, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	logs := make([]domain.InventoryLog, len(r.store.logs))
	copy(logs, r.store.logs)

	return logs, nil
}

// AdjustStock изменяет остаток товара, добавляет запись журнала и
// outbox-событие в одной критической секции. Конкурентные корректировки
// одного товара сериализуются мьютексом: итоговый остаток равен сумме
// всех применённых изменений.
func (r *InventoryRepo) AdjustStock(ctx context.Context, req *usecase.AdjustStockReq) (*domain.InventoryLog, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()

	var product *domain.Product
	for i := range r.store.products {
		if r.store.products[i].ID == req.ProductID {
			product = &r.store.products[i]
			break
		}
	}
	if product == nil {
		r.store.mu.Unlock()
		return nil, e.ErrNotFound
	}

	product.Stock += req.Adjustment

	log := domain.InventoryLog{
		ID: uniqueID(domain.LogIDPrefix, func(id string) bool {
			for i := range r.store.logs {
				if r.store.logs[i].ID == id {
					return true
				}
			}
			return false
		}),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Change:       req.Adjustment,
		CurrentStock: product.Stock,
		Reason:       req.Reason,
		Date:         time.Now().Format(logDateLayout),
		User:         req.User,
	}
	r.store.logs = append([]domain.InventoryLog{log}, r.store.logs...)

	event, err := usecase.NewStockChangedOutboxEvent(&log)
	if err != nil {
		r.store.mu.Unlock()
		return nil, err
	}
	r.store.outboxSeq++
	event.ID = r.store.outboxSeq
	r.store.outbox = append(r.store.outbox, *event)

	notify := r.store.notify
	r.store.mu.Unlock()

	if notify != nil {
		notify()
	}

	return &log, nil
}

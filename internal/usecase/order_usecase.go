package usecase

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type OrderUseCase struct {
	orderRepo OrderRepository
	logger    logger.Logger
}

func NewOrderUC(orderRepo OrderRepository, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (o *OrderUseCase) GetAll(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.GetAll"

	orders, err := o.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// Update применяет частичное обновление заказа.
// Несуществующий ID — всегда ErrNotFound, коллекция при этом не меняется.
func (o *OrderUseCase) Update(ctx context.Context, id string, patch *OrderPatch) (*domain.Order, error) {
	const op = "OrderUseCase.Update"

	if patch.Status != nil && !domain.ValidOrderStatus(*patch.Status) {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	order, err := o.orderRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// InventoryUseCase реализует корректировку складских остатков.
// Изменение остатка, запись журнала и outbox-событие — одна атомарная
// операция хранилища: вызывающая сторона не может наблюдать остаток
// без соответствующей записи журнала.
type InventoryUseCase struct {
	inventoryRepo InventoryRepository
	logger        logger.Logger
}

func NewInventoryUC(inventoryRepo InventoryRepository, logger logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

func (i *InventoryUseCase) GetLogs(ctx context.Context) ([]domain.InventoryLog, error) {
	const op = "InventoryUseCase.GetLogs"

	logs, err := i.inventoryRepo.GetLogs(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return logs, nil
}

func (i *InventoryUseCase) AdjustStock(ctx context.Context, req *AdjustStockReq) (*domain.InventoryLog, error) {
	const op = "InventoryUseCase.AdjustStock"

	if req.Adjustment == 0 {
		return nil, e.Wrap(op, e.ErrZeroAdjustment)
	}
	if !domain.ValidAdjustmentReason(req.Reason) {
		return nil, e.Wrap(op, e.ErrInvalidReason)
	}
	if strings.TrimSpace(req.User) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	log, err := i.inventoryRepo.AdjustStock(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i.logger.Infof("stock adjusted: product=%s change=%+d stock=%d reason=%s", log.ProductID, log.Change, log.CurrentStock, log.Reason)

	return log, nil
}

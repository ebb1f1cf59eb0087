package usecase

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type CustomerUseCase struct {
	customerRepo CustomerRepository
	logger       logger.Logger
}

func NewCustomerUC(customerRepo CustomerRepository, logger logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (c *CustomerUseCase) GetAll(ctx context.Context) ([]domain.Customer, error) {
	const op = "CustomerUseCase.GetAll"

	customers, err := c.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customers, nil
}

func (c *CustomerUseCase) UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error) {
	const op = "CustomerUseCase.UpdateStatus"

	if !domain.ValidCustomerStatus(status) {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	customer, err := c.customerRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customer, nil
}

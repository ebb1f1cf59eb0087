package usecase

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type FinanceUseCase struct {
	txRepo TransactionRepository
	logger logger.Logger
}

func NewFinanceUC(txRepo TransactionRepository, logger logger.Logger) *FinanceUseCase {
	return &FinanceUseCase{txRepo: txRepo, logger: logger}
}

func (f *FinanceUseCase) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	const op = "FinanceUseCase.GetTransactions"

	transactions, err := f.txRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return transactions, nil
}

// GetSummary считает сводку по журналу на момент чтения, ничего не сохраняя.
func (f *FinanceUseCase) GetSummary(ctx context.Context) (*FinanceSummary, error) {
	const op = "FinanceUseCase.GetSummary"

	transactions, err := f.txRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var income, expenses int64
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionCredit:
			income += tx.Amount
		case domain.TransactionDebit:
			expenses += tx.Amount
		}
	}

	return NewFinanceSummary(income, expenses), nil
}

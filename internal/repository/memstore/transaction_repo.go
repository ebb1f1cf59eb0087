package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
)

type TransactionRepo struct {
	store *Store
}

func NewTransactionRepo(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) GetAll(ctx context.Context) ([]domain.Transaction, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transactions := make([]domain.Transaction, len(r.store.transactions))
	copy(transactions, r.store.transactions)

	return transactions, nil
}

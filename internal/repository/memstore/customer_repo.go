package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type CustomerRepo struct {
	store *Store
}

func NewCustomerRepo(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

func (r *CustomerRepo) GetAll(ctx context.Context) ([]domain.Customer, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customers := make([]domain.Customer, len(r.store.customers))
	copy(customers, r.store.customers)

	return customers, nil
}

func (r *CustomerRepo) UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.customers {
		if r.store.customers[i].ID == id {
			r.store.customers[i].Status = status
			updated := r.store.customers[i]
			return &updated, nil
		}
	}

	return nil, e.ErrNotFound
}

package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type ProductRepo struct {
	store *Store
}

func NewProductRepo(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products := make([]domain.Product, len(r.store.products))
	copy(products, r.store.products)

	return products, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *product
	r.store.products = append(r.store.products, created)

	return &created, nil
}

// Update заменяет товар целиком по его ID.
func (r *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.products {
		if r.store.products[i].ID == product.ID {
			r.store.products[i] = *product
			updated := r.store.products[i]
			return &updated, nil
		}
	}

	return nil, e.ErrNotFound
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.delay(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.products {
		if r.store.products[i].ID == id {
			r.store.products = append(r.store.products[:i], r.store.products[i+1:]...)
			return nil
		}
	}

	return e.ErrNotFound
}

package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type PromotionRepo struct {
	store *Store
}

func NewPromotionRepo(store *Store) *PromotionRepo {
	return &PromotionRepo{store: store}
}

func (r *PromotionRepo) GetAll(ctx context.Context) ([]domain.Promotion, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	promos := make([]domain.Promotion, len(r.store.promotions))
	copy(promos, r.store.promotions)

	return promos, nil
}

// Create добавляет промокод в начало списка, как это делает витрина.
func (r *PromotionRepo) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *promo
	created.ID = uniqueID(domain.PromotionIDPrefix, func(id string) bool {
		for i := range r.store.promotions {
			if r.store.promotions[i].ID == id {
				return true
			}
		}
		return false
	})
	r.store.promotions = append([]domain.Promotion{created}, r.store.promotions...)

	return &created, nil
}

func (r *PromotionRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.delay(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.promotions {
		if r.store.promotions[i].ID == id {
			r.store.promotions = append(r.store.promotions[:i], r.store.promotions[i+1:]...)
			return nil
		}
	}

	return e.ErrNotFound
}

// Toggle инвертирует флаг отключения промокода.
func (r *PromotionRepo) Toggle(ctx context.Context, id string) (*domain.Promotion, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.promotions {
		if r.store.promotions[i].ID == id {
			r.store.promotions[i].Disabled = !r.store.promotions[i].Disabled
			updated := r.store.promotions[i]
			return &updated, nil
		}
	}

	return nil, e.ErrNotFound
}

package memstore

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type RepairRepo struct {
	store *Store
}

func NewRepairRepo(store *Store) *RepairRepo {
	return &RepairRepo{store: store}
}

func (r *RepairRepo) GetAll(ctx context.Context) ([]domain.RepairRequest, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	repairs := make([]domain.RepairRequest, len(r.store.repairs))
	copy(repairs, r.store.repairs)

	return repairs, nil
}

func (r *RepairRepo) Create(ctx context.Context, repair *domain.RepairRequest) (*domain.RepairRequest, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *repair
	created.ID = uniqueID(domain.RepairIDPrefix, func(id string) bool {
		for i := range r.store.repairs {
			if r.store.repairs[i].ID == id {
				return true
			}
		}
		return false
	})
	r.store.repairs = append(r.store.repairs, created)

	return &created, nil
}

func (r *RepairRepo) Update(ctx context.Context, id string, patch *usecase.RepairPatch) (*domain.RepairRequest, error) {
	if err := r.store.delay(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.repairs {
		if r.store.repairs[i].ID != id {
			continue
		}

		if patch.Status != nil {
			r.store.repairs[i].Status = *patch.Status
		}
		if patch.EstimatedCost != nil {
			r.store.repairs[i].EstimatedCost = *patch.EstimatedCost
		}
		if patch.EstimatedCompletionDate != nil {
			r.store.repairs[i].EstimatedCompletionDate = *patch.EstimatedCompletionDate
		}
		if patch.IssueDescription != nil {
			r.store.repairs[i].IssueDescription = *patch.IssueDescription
		}

		updated := r.store.repairs[i]
		return &updated, nil
	}

	return nil, e.ErrNotFound
}

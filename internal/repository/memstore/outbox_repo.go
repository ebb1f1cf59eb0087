package memstore

import (
	"context"
	"time"

	"github.com/koliko-tech/admin-backend/internal/usecase"
)

type OutboxEventRepo struct {
	store *Store
}

func NewOutboxEventRepo(store *Store) *OutboxEventRepo {
	return &OutboxEventRepo{store: store}
}

// GetAndMarkAsProcessing атомарно забирает до limit необработанных событий
// в порядке создания и помечает их как взятые в обработку.
func (r *OutboxEventRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	batch := make([]*usecase.OutboxEvent, 0, limit)
	for i := range r.store.outbox {
		if len(batch) == limit {
			break
		}
		if r.store.outbox[i].Status != usecase.Pending {
			continue
		}

		r.store.outbox[i].Status = usecase.Processing
		event := r.store.outbox[i]
		batch = append(batch, &event)
	}

	return batch, nil
}

func (r *OutboxEventRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.outbox {
		if r.store.outbox[i].ID == id {
			now := time.Now().UTC()
			r.store.outbox[i].Status = usecase.Processed
			r.store.outbox[i].ProcessedAt = &now
			return nil
		}
	}

	return nil
}

// Package memstore реализует все репозитории поверх одной in-memory структуры.
// Используется в режиме STORE_BACKEND=memory: демо-стенды и тесты без Postgres.
//
// Вся структура защищена одним мьютексом, поэтому любая операция
// чтение-изменение-запись атомарна: конкурентные корректировки остатка
// не теряют обновлений, а журнал не расходится с остатками.
package memstore

import (
	"context"
	"math/rand"
	"time"

	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/jitter"

	"sync"
)

// Store — общее состояние всех in-memory репозиториев.
type Store struct {
	mu sync.Mutex

	products     []domain.Product
	orders       []domain.Order
	customers    []domain.Customer
	repairs      []domain.RepairRequest
	transactions []domain.Transaction
	logs         []domain.InventoryLog
	promotions   []domain.Promotion

	outbox    []usecase.OutboxEvent
	outboxSeq int64

	// notify дергается после записи в outbox (вне мьютекса).
	notify func()

	latencyBase   time.Duration
	latencyJitter float64
	rng           *rand.Rand
	rngMu         sync.Mutex
}

func NewStore(storeCfg *cfg.StoreCfg) *Store {
	s := &Store{
		latencyBase:   storeCfg.LatencyBase,
		latencyJitter: storeCfg.LatencyJitter,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if storeCfg.Seed {
		s.seed()
	}

	return s
}

// SetNotifier регистрирует колбэк, вызываемый после появления нового
// outbox-события. Должен быть установлен до начала обработки запросов.
func (s *Store) SetNotifier(notify func()) {
	s.mu.Lock()
	s.notify = notify
	s.mu.Unlock()
}

// delay имитирует сетевую задержку реального хранилища.
// При latencyBase == 0 (тесты) возвращается немедленно.
func (s *Store) delay(ctx context.Context) error {
	if s.latencyBase == 0 {
		return nil
	}

	s.rngMu.Lock()
	d := jitter.DurationWithSeed(s.latencyBase, s.latencyJitter, s.rng)
	s.rngMu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// uniqueID генерирует короткий ID, повторяя генерацию при коллизии.
// Вызывается под s.mu.
func uniqueID(prefix string, taken func(id string) bool) string {
	id := domain.NewPrefixedID(prefix)
	for taken(id) {
		id = domain.NewPrefixedID(prefix)
	}
	return id
}

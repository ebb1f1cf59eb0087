// Package controller реализует состояние экрана админ-панели поверх
// usecase-слоя: загрузку коллекции, фильтр, выбор записи и оптимистичные
// мутации с откатом. Используется встраиваемыми клиентами (TUI, боты,
// интеграционные тесты), которым нужно поведение панели без HTTP.
package controller

import (
	"context"
	"sync"

	"github.com/koliko-tech/admin-backend/pkg/e"
)

// Record — запись коллекции с устойчивым идентификатором.
type Record interface {
	RecordID() string
}

// State — состояние загрузки коллекции.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Loader загружает коллекцию целиком. Результат заменяет прежние
// данные, слияния нет: удалённые на сервере записи исчезают.
type Loader[T Record] func(ctx context.Context) ([]T, error)

// Controller хранит коллекцию одного экрана.
// Фильтр и выбор — производные: они не меняют данные.
type Controller[T Record] struct {
	load Loader[T]

	mu         sync.Mutex
	state      State
	saving     bool
	items      []T
	filter     func(T) bool
	selectedID string
	lastErr    error
}

func New[T Record](load Loader[T]) *Controller[T] {
	return &Controller[T]{load: load}
}

// Load загружает коллекцию. Неудача не трогает прежние данные:
// экран показывает устаревший список и ошибку, а не пустоту.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	items, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		return err
	}

	c.state = StateLoaded
	c.lastErr = nil
	c.items = items

	// выбор сбрасывается, если записи больше нет
	if c.selectedID != "" {
		if _, ok := c.findLocked(c.selectedID); !ok {
			c.selectedID = ""
		}
	}

	return nil
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

func (c *Controller[T]) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Items возвращает копию всей коллекции без учёта фильтра.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// SetFilter задаёт предикат видимости. nil снимает фильтр.
func (c *Controller[T]) SetFilter(filter func(T) bool) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
}

// Visible возвращает записи, проходящие фильтр, в порядке коллекции.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filter == nil {
		items := make([]T, len(c.items))
		copy(items, c.items)
		return items
	}

	visible := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.filter(item) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Select выбирает запись по ID. Неизвестный ID не меняет выбор.
func (c *Controller[T]) Select(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.findLocked(id); !ok {
		return false
	}

	c.selectedID = id
	return true
}

// Selected возвращает текущую версию выбранной записи.
// Выбор привязан к ID: после мутации возвращается обновлённая запись.
func (c *Controller[T]) Selected() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(c.selectedID)
}

func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	c.selectedID = ""
	c.mu.Unlock()
}

// Save выполняет подтверждённую мутацию без оптимизма: коллекция не
// меняется до ответа, затем серверная версия замещает запись по ID.
func (c *Controller[T]) Save(ctx context.Context, commit func(ctx context.Context) (T, error)) error {
	c.mu.Lock()
	c.saving = true
	c.mu.Unlock()

	confirmed, err := commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false

	if err != nil {
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	if idx := c.indexLocked(confirmed.RecordID()); idx >= 0 {
		c.items[idx] = confirmed
	}
	return nil
}

// ApplyOptimistic немедленно подменяет запись локальной версией, затем
// выполняет commit. Успех закрепляет серверную версию записи, ошибка
// откатывает коллекцию к снимку до мутации.
func (c *Controller[T]) ApplyOptimistic(ctx context.Context, optimistic T, commit func(ctx context.Context) (T, error)) error {
	id := optimistic.RecordID()

	c.mu.Lock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)

	idx := c.indexLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return e.ErrNotFound
	}
	c.items[idx] = optimistic
	c.saving = true
	c.mu.Unlock()

	confirmed, err := commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false

	if err != nil {
		c.items = snapshot
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	if idx := c.indexLocked(id); idx >= 0 {
		c.items[idx] = confirmed
	}
	return nil
}

// Add выполняет commit и вставляет подтверждённую запись в коллекцию.
// Запись не появляется в списке до ответа сервера: у неё ещё нет ID.
func (c *Controller[T]) Add(ctx context.Context, commit func(ctx context.Context) (T, error)) error {
	c.mu.Lock()
	c.saving = true
	c.mu.Unlock()

	created, err := commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false

	if err != nil {
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	c.items = append(c.items, created)
	return nil
}

// Remove оптимистично убирает запись и выполняет commit,
// возвращая её на место при ошибке.
func (c *Controller[T]) Remove(ctx context.Context, id string, commit func(ctx context.Context) error) error {
	c.mu.Lock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)

	idx := c.indexLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return e.ErrNotFound
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	if c.selectedID == id {
		c.selectedID = ""
	}
	c.saving = true
	c.mu.Unlock()

	err := commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false

	if err != nil {
		c.items = snapshot
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	return nil
}

func (c *Controller[T]) indexLocked(id string) int {
	for i := range c.items {
		if c.items[i].RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Controller[T]) findLocked(id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	if idx := c.indexLocked(id); idx >= 0 {
		return c.items[idx], true
	}
	return zero, false
}

package usecase

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
)

// Репозитории — единственная граница между бизнес-логикой и хранилищем.
// Каждая мутация атомарна на стороне хранилища: чтение-изменение-запись одной
// записи никогда не пересекается с другой такой же операцией.

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, patch *OrderPatch) (*domain.Order, error)
}

type CustomerRepository interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error)
}

type RepairRepository interface {
	GetAll(ctx context.Context) ([]domain.RepairRequest, error)
	Create(ctx context.Context, repair *domain.RepairRequest) (*domain.RepairRequest, error)
	Update(ctx context.Context, id string, patch *RepairPatch) (*domain.RepairRequest, error)
}

type TransactionRepository interface {
	GetAll(ctx context.Context) ([]domain.Transaction, error)
}

// InventoryRepository выполняет корректировку остатка, запись журнала и
// outbox-событие как одну атомарную операцию хранилища.
type InventoryRepository interface {
	GetLogs(ctx context.Context) ([]domain.InventoryLog, error)
	AdjustStock(ctx context.Context, req *AdjustStockReq) (*domain.InventoryLog, error)
}

type PromotionRepository interface {
	GetAll(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (*domain.Promotion, error)
}

type OutboxRepository interface {
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProductList(ctx context.Context) ([]domain.Product, error)
	SetProductList(ctx context.Context, products []domain.Product) error
	InvalidateProducts(ctx context.Context) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

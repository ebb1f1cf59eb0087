package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// ProductUseCase реализует операции каталога товаров.
// Список читается через кэш; любая мутация инвалидирует его.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository // nil, если кэш отключён
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// GetAll возвращает все товары. Промах кэша не является ошибкой:
// данные читаются из репозитория и кэшируются в фоне.
func (p *ProductUseCase) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.GetAll"

	if p.cacheRepo != nil {
		if products, err := p.cacheRepo.GetProductList(ctx); err == nil && products != nil {
			return products, nil
		}
	}

	products, err := p.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if p.cacheRepo != nil {
		// Фоновое добавление списка в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProductList(bgCtx, products); err != nil {
				p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return products, nil
}

func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	if err := validateProductInput(req.Name, req.Price, req.Stock); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Price, req.Category, req.Stock, req.ImageURL, req.Images, req.Description)

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op)
	return created, nil
}

// Update заменяет товар целиком по ID. Частичного слияния нет:
// клиент присылает полную запись, устаревшие поля не воскресают.
func (p *ProductUseCase) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	if err := validateProductInput(product.Name, product.Price, product.Stock); err != nil {
		return nil, e.Wrap(op, err)
	}
	if !domain.ValidProductStatus(product.Status) {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	updated, err := p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op)
	return updated, nil
}

func (p *ProductUseCase) Delete(ctx context.Context, id string) error {
	const op = "ProductUseCase.Delete"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op)
	return nil
}

func (p *ProductUseCase) invalidateCache(ctx context.Context, op string) {
	if p.cacheRepo == nil {
		return
	}

	if err := p.cacheRepo.InvalidateProducts(ctx); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

func validateProductInput(name string, price int64, stock int64) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrNameRequired
	}

	if price <= 0 {
		return e.ErrInvalidPrice
	}

	if stock < 0 {
		return e.ErrStatusBadRequest
	}

	return nil
}

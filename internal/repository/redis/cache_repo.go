package redis

import (
	"context"
	"encoding/json"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"

	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/clients"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

const productListKey = "products:list"

// CacheRepo кэширует список товаров целиком под одним ключом.
// Любая мутация каталога инвалидирует весь список.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProductList возвращает закэшированный список товаров.
// Промах кэша возвращается как e.ErrNotFound.
func (c *CacheRepo) GetProductList(ctx context.Context) ([]domain.Product, error) {
	data, err := c.client.Client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, e.ErrNotFound
		}
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), productListKey).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, e.ErrNotFound
	}

	return products, nil
}

// SetProductList кэширует список товаров с TTL из конфигурации.
// Ошибки записи логируются и не прерывают вызывающую операцию.
func (c *CacheRepo) SetProductList(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warnf("Failed to marshal product list for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, productListKey, data, c.cfg.ProductTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateProducts удаляет закэшированный список товаров.
func (c *CacheRepo) InvalidateProducts(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, productListKey).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

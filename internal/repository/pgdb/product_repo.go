package pgdb

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, name, price, category, stock, image_url, images, status, description`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var product domain.Product
	var images []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Category,
		&product.Stock,
		&product.ImageURL,
		&images,
		&product.Status,
		&product.Description,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(images, &product.Images); err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	row := p.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Category,
		product.Stock,
		product.ImageURL,
		images,
		product.Status,
		product.Description,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}

// Update заменяет товар целиком одним запросом: конкурентные обновления
// сериализуются на уровне строки.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, price = $3, category = $4, stock = $5,
			image_url = $6, images = $7, status = $8, description = $9
		WHERE id = $1
		RETURNING ` + productColumns

	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	row := p.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Category,
		product.Stock,
		product.ImageURL,
		images,
		product.Status,
		product.Description,
	)

	updated, err := scanProduct(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return updated, nil
}

func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type PromotionRepo struct {
	pool *pgxpool.Pool
}

func NewPromotionRepo(pool *pgxpool.Pool) *PromotionRepo {
	return &PromotionRepo{pool: pool}
}

const promotionColumns = `id, code, type, value, start_date, end_date, usage_count, disabled, min_order_amount`

func scanPromotion(row interface{ Scan(dest ...any) error }) (*domain.Promotion, error) {
	var promo domain.Promotion

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Type,
		&promo.Value,
		&promo.StartDate,
		&promo.EndDate,
		&promo.UsageCount,
		&promo.Disabled,
		&promo.MinOrderAmount,
	)
	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (p *PromotionRepo) GetAll(ctx context.Context) ([]domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Promotion, 0)
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *promo)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *PromotionRepo) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + promotionColumns

	for {
		id := domain.NewPrefixedID(domain.PromotionIDPrefix)

		row := p.pool.QueryRow(ctx, query,
			id,
			promo.Code,
			promo.Type,
			promo.Value,
			promo.StartDate,
			promo.EndDate,
			promo.UsageCount,
			promo.Disabled,
			promo.MinOrderAmount,
		)

		created, err := scanPromotion(row)
		if err != nil {
			if postgresDuplicate(err) {
				continue
			}
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return created, nil
	}
}

func (p *PromotionRepo) Delete(ctx context.Context, id string) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// Toggle инвертирует флаг отключения одним запросом.
func (p *PromotionRepo) Toggle(ctx context.Context, id string) (*domain.Promotion, error) {
	query := `
		UPDATE promotions
		SET disabled = NOT disabled
		WHERE id = $1
		RETURNING ` + promotionColumns

	updated, err := scanPromotion(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return updated, nil
}

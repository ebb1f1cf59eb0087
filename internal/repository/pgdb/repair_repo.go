package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type RepairRepo struct {
	pool *pgxpool.Pool
}

func NewRepairRepo(pool *pgxpool.Pool) *RepairRepo {
	return &RepairRepo{pool: pool}
}

const repairColumns = `id, customer_name, email, phone, product_name, issue_description, status, date, estimated_cost, image_url, estimated_completion_date`

func scanRepair(row interface{ Scan(dest ...any) error }) (*domain.RepairRequest, error) {
	var repair domain.RepairRequest

	err := row.Scan(
		&repair.ID,
		&repair.CustomerName,
		&repair.Email,
		&repair.Phone,
		&repair.ProductName,
		&repair.IssueDescription,
		&repair.Status,
		&repair.Date,
		&repair.EstimatedCost,
		&repair.ImageURL,
		&repair.EstimatedCompletionDate,
	)
	if err != nil {
		return nil, err
	}

	return &repair, nil
}

func (r *RepairRepo) GetAll(ctx context.Context) ([]domain.RepairRequest, error) {
	query := `SELECT ` + repairColumns + ` FROM repairs ORDER BY date DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.RepairRequest, 0)
	for rows.Next() {
		repair, err := scanRepair(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *repair)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Create вставляет заявку, повторяя генерацию короткого ID при коллизии.
func (r *RepairRepo) Create(ctx context.Context, repair *domain.RepairRequest) (*domain.RepairRequest, error) {
	query := `
		INSERT INTO repairs (` + repairColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + repairColumns

	for {
		id := domain.NewPrefixedID(domain.RepairIDPrefix)

		row := r.pool.QueryRow(ctx, query,
			id,
			repair.CustomerName,
			repair.Email,
			repair.Phone,
			repair.ProductName,
			repair.IssueDescription,
			repair.Status,
			repair.Date,
			repair.EstimatedCost,
			repair.ImageURL,
			repair.EstimatedCompletionDate,
		)

		created, err := scanRepair(row)
		if err != nil {
			if postgresDuplicate(err) {
				continue
			}
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return created, nil
	}
}

func (r *RepairRepo) Update(ctx context.Context, id string, patch *usecase.RepairPatch) (*domain.RepairRequest, error) {
	query := `
		UPDATE repairs
		SET status = COALESCE($2, status),
			estimated_cost = COALESCE($3, estimated_cost),
			estimated_completion_date = COALESCE($4, estimated_completion_date),
			issue_description = COALESCE($5, issue_description)
		WHERE id = $1
		RETURNING ` + repairColumns

	row := r.pool.QueryRow(ctx, query, id, patch.Status, patch.EstimatedCost, patch.EstimatedCompletionDate, patch.IssueDescription)

	updated, err := scanRepair(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return updated, nil
}

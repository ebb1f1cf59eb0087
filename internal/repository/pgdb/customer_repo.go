package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, name, email, phone, total_orders, total_spent, status, join_date, last_active, avatar_url`

func scanCustomer(row interface{ Scan(dest ...any) error }) (*domain.Customer, error) {
	var customer domain.Customer

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.TotalOrders,
		&customer.TotalSpent,
		&customer.Status,
		&customer.JoinDate,
		&customer.LastActive,
		&customer.AvatarURL,
	)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (c *CustomerRepo) GetAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY join_date`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *customer)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CustomerRepo) UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET status = $2
		WHERE id = $1
		RETURNING ` + customerColumns

	updated, err := scanCustomer(c.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return updated, nil
}

package pgdb

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, customer_id, customer_name, total, status, date, items, payment_method, tracking_number, estimated_delivery_date`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	var order domain.Order
	var items []byte

	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.CustomerName,
		&order.Total,
		&order.Status,
		&order.Date,
		&items,
		&order.PaymentMethod,
		&order.TrackingNumber,
		&order.EstimatedDeliveryDate,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *OrderRepo) GetAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY date DESC, id`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Update применяет патч одним запросом: COALESCE оставляет незаполненные
// поля нетронутыми, конкурентные патчи разных полей не теряются.
func (o *OrderRepo) Update(ctx context.Context, id string, patch *usecase.OrderPatch) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = COALESCE($2, status),
			tracking_number = COALESCE($3, tracking_number),
			estimated_delivery_date = COALESCE($4, estimated_delivery_date)
		WHERE id = $1
		RETURNING ` + orderColumns

	row := o.pool.QueryRow(ctx, query, id, patch.Status, patch.TrackingNumber, patch.EstimatedDeliveryDate)

	updated, err := scanOrder(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return updated, nil
}

package pgdb

import (
	"context"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/tr"
)

const logDateLayout = "2006-01-02 15:04"

type InventoryRepo struct {
	pool   *pgxpool.Pool
	outbox *OutboxEventRepo
}

func NewInventoryRepo(pool *pgxpool.Pool, outbox *OutboxEventRepo) *InventoryRepo {
	return &InventoryRepo{pool: pool, outbox: outbox}
}

// GetLogs возвращает журнал корректировок, новые записи первыми.
func (i *InventoryRepo) GetLogs(ctx context.Context) ([]domain.InventoryLog, error) {
	query := `
		SELECT id, product_id, product_name, change, current_stock, reason, date, user_name
		FROM inventory_logs
		ORDER BY created_at DESC
	`

	rows, err := i.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.InventoryLog, 0)
	for rows.Next() {
		var log domain.InventoryLog
		err := rows.Scan(
			&log.ID,
			&log.ProductID,
			&log.ProductName,
			&log.Change,
			&log.CurrentStock,
			&log.Reason,
			&log.Date,
			&log.User,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, log)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// AdjustStock изменяет остаток, пишет запись журнала и outbox-событие
// в одной транзакции. UPDATE ... RETURNING сериализует конкурентные
// корректировки одного товара на уровне строки.
func (i *InventoryRepo) AdjustStock(ctx context.Context, req *usecase.AdjustStockReq) (_ *domain.InventoryLog, err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.pool)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	log, err := i.applyAdjustment(ctx, req)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	event, err := usecase.NewStockChangedOutboxEvent(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err = i.outbox.Create(ctx, event); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return log, nil
}

func (i *InventoryRepo) applyAdjustment(ctx context.Context, req *usecase.AdjustStockReq) (*domain.InventoryLog, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var productName string
	var currentStock int64
	err = tx.QueryRow(ctx, `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1
		RETURNING name, stock
	`, req.ProductID, req.Adjustment).Scan(&productName, &currentStock)
	if err != nil {
		return nil, notFound(err)
	}

	log := &domain.InventoryLog{
		ProductID:    req.ProductID,
		ProductName:  productName,
		Change:       req.Adjustment,
		CurrentStock: currentStock,
		Reason:       req.Reason,
		Date:         time.Now().Format(logDateLayout),
		User:         req.User,
	}

	insert := `
		INSERT INTO inventory_logs (id, product_id, product_name, change, current_stock, reason, date, user_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	for {
		id := domain.NewPrefixedID(domain.LogIDPrefix)
		err := tx.QueryRow(ctx, insert,
			id,
			log.ProductID,
			log.ProductName,
			log.Change,
			log.CurrentStock,
			log.Reason,
			log.Date,
			log.User,
		).Scan(&log.ID)
		if err != nil {
			if postgresDuplicate(err) {
				continue
			}
			return nil, err
		}

		return log, nil
	}
}

// Package pgdb реализует репозитории поверх PostgreSQL.
// Используется в режиме STORE_BACKEND=postgres.
package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/koliko-tech/admin-backend/pkg/e"
)

const uniqueViolationCode = "23505"

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// notFound переводит pgx.ErrNoRows в доменную ошибку отсутствия записи.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return e.ErrNotFound
	}
	return err
}

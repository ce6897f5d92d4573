package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation は PostgreSQL の unique_violation
const pgUniqueViolation = "23505"

// isUniqueViolation は一意制約違反かを判定します。SQLite はエラーコードを型で返さないためメッセージで判定する。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

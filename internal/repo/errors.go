package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when a username does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned on unique constraint violations.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
	// ErrInsufficientQuantity is returned when an adjustment would take a
	// product's quantity below zero.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/bookypedia/internal/entity"
)

const (
	ErrStringDataRightTruncation = "22001"
	ErrNotNullViolation          = "23502"
	ErrForeignKeyViolation       = "23503"
	ErrUniqueViolation           = "23505"
	ErrCheckViolation            = "23514"
)

const authorsNameConstraint = "authors_name_key"

// convertErr maps driver errors onto the entity error taxonomy. Errors that
// already belong to it pass through untouched.
func convertErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrConstraintViolation) ||
		errors.Is(err, entity.ErrTransactionFailure) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case ErrUniqueViolation:
			if pgErr.ConstraintName == authorsNameConstraint {
				return fmt.Errorf("%w: %s", entity.ErrAuthorAlreadyExists, pgErr.Detail)
			}
			return fmt.Errorf("%w: %s", entity.ErrConstraintViolation, pgErr.Message)
		case ErrStringDataRightTruncation,
			ErrNotNullViolation,
			ErrForeignKeyViolation,
			ErrCheckViolation:
			return fmt.Errorf("%w: %s", entity.ErrConstraintViolation, pgErr.Message)
		}
	}

	return fmt.Errorf("%w: %w", entity.ErrTransactionFailure, err)
}

package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrTransactionFailure  = errors.New("transaction failure")
)

var (
	ErrAuthorNotFound      = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound        = fmt.Errorf("book %w", ErrNotFound)
	ErrAuthorAlreadyExists = fmt.Errorf("author name is taken: %w", ErrConstraintViolation)
)

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	db
	scan
	f
	beginTx
	commitTx
	rollBackTx
	lock
	notFound
)

var errInternal = errors.New("internal error")

const (
	lockAuthors = `LOCK TABLE authors IN EXCLUSIVE MODE`
	lockAll     = `LOCK TABLE authors, books, book_tags IN EXCLUSIVE MODE`
	lockBooks   = `LOCK TABLE books, book_tags IN EXCLUSIVE MODE`
)

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}

func newMock(t interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
}) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("can not create pgxmock pool: %s", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{
		Code:           code,
		ConstraintName: constraint,
		Message:        "pg error " + code,
	}
}

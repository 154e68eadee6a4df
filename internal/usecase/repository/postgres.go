package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	tableAuthors  = "authors"
	tableBooks    = "books"
	tableBookTags = "book_tags"
)

// lockMode conflicts with every writer and lets plain readers through.
// Tables are always locked in the order authors, books, book_tags.
const lockMode = "EXCLUSIVE"

type DataBase interface {
	GetterTx
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresRepository struct {
	db         DataBase
	transactor *transactorImpl
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		db:         db,
		transactor: NewTransactor(logger, db),
	}
}

func (p *postgresRepository) Authors() *authorRepository {
	return &authorRepository{postgresRepository: p}
}

func (p *postgresRepository) Books() *booksRepository {
	return &booksRepository{postgresRepository: p}
}

// inTx runs function inside the transaction carried by ctx, or inside a new
// one when there is none.
func (p *postgresRepository) inTx(ctx context.Context, function func(ctx context.Context, tx pgx.Tx) error) error {
	err := p.transactor.WithTx(ctx, func(ctx context.Context) error {
		tx, err := extractTx(ctx)

		if err != nil {
			return err
		}

		return function(ctx, tx)
	})

	return convertErr(err)
}

func (p *postgresRepository) querier(ctx context.Context) querier {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func lockTables(ctx context.Context, tx pgx.Tx, tables ...string) error {
	_, err := tx.Exec(ctx, "LOCK TABLE "+strings.Join(tables, ", ")+" IN "+lockMode+" MODE")
	return err
}

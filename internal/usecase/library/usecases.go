package library

import (
	"context"

	"github.com/project/bookypedia/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/mock_usecases.go -package=mocks

type (
	AuthorRepository interface {
		Save(ctx context.Context, author entity.Author) error
		GetAuthors(ctx context.Context) ([]entity.Author, error)
		Delete(ctx context.Context, name string) error
		Edit(ctx context.Context, newName, oldName string) error
	}

	BooksRepository interface {
		Save(ctx context.Context, book entity.Book) error
		ShowBooks(ctx context.Context) ([]entity.BookSummary, error)
		ShowBook(ctx context.Context, title string) ([]entity.BookDetails, error)
		GetAuthorBooks(ctx context.Context, authorID entity.AuthorID) ([]entity.Book, error)
		DeleteBook(ctx context.Context, id entity.BookID) error
		EditBook(ctx context.Context, title string, year int, tags []string, id entity.BookID) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

var _ AuthorUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger           *zap.Logger
	authorRepository AuthorRepository
	booksRepository  BooksRepository
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	authorRepository AuthorRepository,
	booksRepository BooksRepository,
	transactor Transactor,
) *libraryImpl {
	return &libraryImpl{
		logger:           logger,
		authorRepository: authorRepository,
		booksRepository:  booksRepository,
		transactor:       transactor,
	}
}

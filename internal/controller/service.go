package controller

import (
	"bufio"
	"context"
	"io"

	"github.com/project/bookypedia/internal/entity"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type (
	AuthorUseCase interface {
		AddAuthor(ctx context.Context, name string) (entity.Author, error)
		DeleteAuthor(ctx context.Context, name string) error
		EditAuthor(ctx context.Context, newName, oldName string) error
		ShowAuthors(ctx context.Context) ([]entity.Author, error)
	}

	BooksUseCase interface {
		AddBook(ctx context.Context, year int, title string, authorID entity.AuthorID, tags []string) (entity.Book, error)
		AddBookWithAuthor(ctx context.Context, year int, title, authorName string, tags []string) (entity.Book, error)
		ShowBooks(ctx context.Context) ([]entity.BookSummary, error)
		ShowBook(ctx context.Context, title string) ([]entity.BookDetails, error)
		GetAuthorBooks(ctx context.Context, authorID entity.AuthorID) ([]entity.Book, error)
		DeleteBook(ctx context.Context, id entity.BookID) error
		EditBook(ctx context.Context, title string, year int, tags []string, id entity.BookID) error
	}
)

const tracerName = "github.com/project/bookypedia/internal/controller"

type implementation struct {
	logger        *zap.Logger
	tracer        trace.Tracer
	booksUseCase  BooksUseCase
	authorUseCase AuthorUseCase
	input         *bufio.Scanner
	output        io.Writer
	commands      []command
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	authorUseCase AuthorUseCase,
	input io.Reader,
	output io.Writer,
) *implementation {
	i := &implementation{
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
		booksUseCase:  booksUseCase,
		authorUseCase: authorUseCase,
		input:         bufio.NewScanner(input),
		output:        output,
	}
	i.commands = i.registerCommands()
	return i
}

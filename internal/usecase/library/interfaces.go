package library

import (
	"context"

	"github.com/project/bookypedia/internal/entity"
)

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

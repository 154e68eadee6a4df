package library

import (
	"context"

	"github.com/project/bookypedia/internal/entity"
	"github.com/project/bookypedia/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) AddBook(ctx context.Context, year int, title string, authorID entity.AuthorID, tags []string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", authorID.String()))
	log.InfoAddBook(l.logger, "Start of add book", traceID, title, authorID.String(), tags)

	book := entity.NewBook(entity.NewBookID(), authorID, title, year, tags)
	err := l.booksRepository.Save(ctx, book)

	if log.ErrorAddBook(l.logger, err, "Failed add book", traceID, title, authorID.String(), tags) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID().String()))
	log.InfoAddBook(l.logger, "Added the book", traceID, title, authorID.String(), book.Tags(), book.ID().String())
	return book, nil
}

// AddBookWithAuthor registers authorName and its first book as one unit, so a
// rejected book never leaves the author behind.
func (l *libraryImpl) AddBookWithAuthor(ctx context.Context, year int, title, authorName string, tags []string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_name", authorName))
	log.InfoAddBookWithAuthor(l.logger, "Start of add book with author", traceID, title, authorName)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		author := entity.NewAuthor(entity.NewAuthorID(), authorName)
		if txErr := l.authorRepository.Save(ctx, author); txErr != nil {
			return txErr
		}

		book = entity.NewBook(entity.NewBookID(), author.ID(), title, year, tags)
		return l.booksRepository.Save(ctx, book)
	})

	if log.ErrorAddBookWithAuthor(l.logger, err, "Failed add book with author", traceID, title, authorName) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(
		attribute.String("author_id", book.AuthorID().String()),
		attribute.String("book_id", book.ID().String()),
	)
	log.InfoAddBookWithAuthor(l.logger, "Added the book with author", traceID, title, authorName)
	return book, nil
}

func (l *libraryImpl) ShowBooks(ctx context.Context) ([]entity.BookSummary, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	books, err := l.booksRepository.ShowBooks(ctx)

	if log.ErrorShowBooks(l.logger, err, "Failed show books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoShowBooks(l.logger, "Got the books", traceID, len(books))
	return books, nil
}

func (l *libraryImpl) ShowBook(ctx context.Context, title string) ([]entity.BookDetails, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_title", title))

	books, err := l.booksRepository.ShowBook(ctx, title)

	if log.ErrorShowBook(l.logger, err, "Failed show book", traceID, title) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoShowBook(l.logger, "Got the books with title", traceID, title, len(books))
	return books, nil
}

func (l *libraryImpl) GetAuthorBooks(ctx context.Context, authorID entity.AuthorID) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", authorID.String()))

	books, err := l.booksRepository.GetAuthorBooks(ctx, authorID)

	if log.ErrorGetAuthorBooks(l.logger, err, "Failed get author books", traceID, authorID.String()) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetAuthorBooks(l.logger, "Got the author's books", traceID, authorID.String())
	return books, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, id entity.BookID) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", id.String()))
	log.InfoDeleteBook(l.logger, "Start of delete book", traceID, id.String())

	err := l.booksRepository.DeleteBook(ctx, id)

	if log.ErrorDeleteBook(l.logger, err, "Failed delete book", traceID, id.String()) {
		span.RecordError(err)
	} else {
		log.InfoDeleteBook(l.logger, "Deleted the book", traceID, id.String())
	}

	return err
}

func (l *libraryImpl) EditBook(ctx context.Context, title string, year int, tags []string, id entity.BookID) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", id.String()))
	log.InfoEditBook(l.logger, "Start of edit book", traceID, id.String(), title, year, tags)

	err := l.booksRepository.EditBook(ctx, title, year, tags, id)

	if log.ErrorEditBook(l.logger, err, "Failed edit book", traceID, id.String(), title, year, tags) {
		span.RecordError(err)
	} else {
		log.InfoEditBook(l.logger, "Edited the book", traceID, id.String(), title, year, tags)
	}

	return err
}

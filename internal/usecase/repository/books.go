package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/bookypedia/internal/entity"
	"github.com/samber/lo"
)

var _ BooksRepository = (*booksRepository)(nil)

type booksRepository struct {
	*postgresRepository
}

func (p *booksRepository) Save(ctx context.Context, book entity.Book) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableBooks, tableBookTags); err != nil {
			return err
		}

		const query = `
INSERT INTO books (id, author_id, title, publication_year)
VALUES ($1, $2, $3, $4)
`
		bookID := book.ID().String()
		_, err := tx.Exec(ctx, query, bookID, book.AuthorID().String(), book.Title(), book.PublicationYear())

		if err != nil {
			return err
		}

		return insertTags(ctx, tx, bookID, book.Tags())
	})
}

func (p *booksRepository) ShowBooks(ctx context.Context) ([]entity.BookSummary, error) {
	const query = `
SELECT books.id, books.title, authors.name, books.publication_year
FROM books
JOIN authors ON authors.id = books.author_id
ORDER BY books.title, authors.name, books.publication_year
`
	rows, err := p.querier(ctx).Query(ctx, query)

	if err != nil {
		return nil, convertErr(err)
	}
	defer rows.Close()

	books := make([]entity.BookSummary, 0)
	for rows.Next() {
		var (
			rawID   string
			summary entity.BookSummary
		)

		if err = rows.Scan(&rawID, &summary.Title, &summary.AuthorName, &summary.PublicationYear); err != nil {
			return nil, convertErr(err)
		}

		if summary.ID, err = entity.ParseBookID(rawID); err != nil {
			return nil, err
		}

		books = append(books, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, convertErr(err)
	}

	return books, nil
}

func (p *booksRepository) ShowBook(ctx context.Context, title string) ([]entity.BookDetails, error) {
	const query = `
SELECT books.id, books.title, authors.name, books.publication_year,
       COALESCE(array_agg(book_tags.tag ORDER BY book_tags.tag) FILTER (WHERE book_tags.tag IS NOT NULL), '{}')
FROM books
JOIN authors ON authors.id = books.author_id
LEFT JOIN book_tags ON book_tags.book_id = books.id
WHERE books.title = $1
GROUP BY books.id, authors.name
ORDER BY authors.name, books.publication_year
`
	rows, err := p.querier(ctx).Query(ctx, query, title)

	if err != nil {
		return nil, convertErr(err)
	}
	defer rows.Close()

	books := make([]entity.BookDetails, 0)
	for rows.Next() {
		var (
			rawID   string
			details entity.BookDetails
		)

		err = rows.Scan(&rawID, &details.Title, &details.AuthorName, &details.PublicationYear, &details.Tags)
		if err != nil {
			return nil, convertErr(err)
		}

		if details.ID, err = entity.ParseBookID(rawID); err != nil {
			return nil, err
		}

		details.Tags = entity.NormalizeTags(details.Tags)
		books = append(books, details)
	}

	if err = rows.Err(); err != nil {
		return nil, convertErr(err)
	}

	return books, nil
}

func (p *booksRepository) GetAuthorBooks(ctx context.Context, authorID entity.AuthorID) ([]entity.Book, error) {
	const query = `
SELECT books.id, books.title, books.publication_year,
       COALESCE(array_agg(book_tags.tag) FILTER (WHERE book_tags.tag IS NOT NULL), '{}')
FROM books
LEFT JOIN book_tags ON book_tags.book_id = books.id
WHERE books.author_id = $1
GROUP BY books.id
ORDER BY books.publication_year, books.title
`
	rows, err := p.querier(ctx).Query(ctx, query, authorID.String())

	if err != nil {
		return nil, convertErr(err)
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var (
			rawID, title string
			year         int
			tags         []string
		)

		if err = rows.Scan(&rawID, &title, &year, &tags); err != nil {
			return nil, convertErr(err)
		}

		bookID, err := entity.ParseBookID(rawID)
		if err != nil {
			return nil, err
		}

		books = append(books, entity.NewBook(bookID, authorID, title, year, tags))
	}

	if err = rows.Err(); err != nil {
		return nil, convertErr(err)
	}

	return books, nil
}

func (p *booksRepository) DeleteBook(ctx context.Context, id entity.BookID) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableBooks, tableBookTags); err != nil {
			return err
		}

		bookID := id.String()
		if err := checkBookExists(ctx, tx, bookID); err != nil {
			return err
		}

		if err := deleteTags(ctx, tx, bookID); err != nil {
			return err
		}

		const query = `
DELETE FROM books WHERE id = $1
`
		_, err := tx.Exec(ctx, query, bookID)
		return err
	})
}

func (p *booksRepository) EditBook(ctx context.Context, title string, year int, tags []string, id entity.BookID) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableBooks, tableBookTags); err != nil {
			return err
		}

		bookID := id.String()
		if err := checkBookExists(ctx, tx, bookID); err != nil {
			return err
		}

		const query = `
UPDATE books SET title = $1, publication_year = $2 WHERE id = $3
`
		if _, err := tx.Exec(ctx, query, title, year, bookID); err != nil {
			return err
		}

		if err := deleteTags(ctx, tx, bookID); err != nil {
			return err
		}

		return insertTags(ctx, tx, bookID, entity.NormalizeTags(tags))
	})
}

func checkBookExists(ctx context.Context, tx pgx.Tx, bookID string) error {
	const query = `
SELECT title FROM books WHERE id = $1
`
	var title string
	err := tx.QueryRow(ctx, query, bookID).Scan(&title)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("no book with id %s: %w", bookID, entity.ErrBookNotFound)
	}

	return err
}

func deleteTags(ctx context.Context, tx pgx.Tx, bookID string) error {
	const query = `
DELETE FROM book_tags WHERE book_id = $1
`
	_, err := tx.Exec(ctx, query, bookID)
	return err
}

func insertTags(ctx context.Context, tx pgx.Tx, bookID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	rows := lo.Map(tags, func(tag string, _ int) []any {
		return []any{bookID, tag}
	})

	_, err := tx.CopyFrom(ctx, pgx.Identifier{tableBookTags}, []string{"book_id", "tag"}, pgx.CopyFromRows(rows))
	return err
}

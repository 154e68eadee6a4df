package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/bookypedia/internal/entity"
)

var _ AuthorRepository = (*authorRepository)(nil)

type authorRepository struct {
	*postgresRepository
}

func (p *authorRepository) Save(ctx context.Context, author entity.Author) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableAuthors); err != nil {
			return err
		}

		const query = `
INSERT INTO authors (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = $2
`
		_, err := tx.Exec(ctx, query, author.ID().String(), author.Name())
		return err
	})
}

func (p *authorRepository) GetAuthors(ctx context.Context) ([]entity.Author, error) {
	const query = `
SELECT id, name
FROM authors
ORDER BY name
`
	rows, err := p.querier(ctx).Query(ctx, query)

	if err != nil {
		return nil, convertErr(err)
	}
	defer rows.Close()

	authors := make([]entity.Author, 0)
	for rows.Next() {
		var rawID, name string

		if err = rows.Scan(&rawID, &name); err != nil {
			return nil, convertErr(err)
		}

		id, err := entity.ParseAuthorID(rawID)
		if err != nil {
			return nil, err
		}

		authors = append(authors, entity.NewAuthor(id, name))
	}

	if err = rows.Err(); err != nil {
		return nil, convertErr(err)
	}

	return authors, nil
}

func (p *authorRepository) Delete(ctx context.Context, name string) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableAuthors, tableBooks, tableBookTags); err != nil {
			return err
		}

		authorID, err := authorIDByName(ctx, tx, name)
		if err != nil {
			return err
		}

		const queryTags = `
DELETE FROM book_tags
WHERE book_id IN (SELECT id FROM books WHERE author_id = $1)
`
		if _, err = tx.Exec(ctx, queryTags, authorID); err != nil {
			return err
		}

		const queryBooks = `
DELETE FROM books WHERE author_id = $1
`
		if _, err = tx.Exec(ctx, queryBooks, authorID); err != nil {
			return err
		}

		const queryAuthor = `
DELETE FROM authors WHERE id = $1
`
		_, err = tx.Exec(ctx, queryAuthor, authorID)
		return err
	})
}

func (p *authorRepository) Edit(ctx context.Context, newName, oldName string) error {
	return p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockTables(ctx, tx, tableAuthors); err != nil {
			return err
		}

		authorID, err := authorIDByName(ctx, tx, oldName)
		if err != nil {
			return err
		}

		const query = `
UPDATE authors SET name = $1 WHERE id = $2
`
		_, err = tx.Exec(ctx, query, newName, authorID)
		return err
	})
}

func authorIDByName(ctx context.Context, tx pgx.Tx, name string) (string, error) {
	const query = `
SELECT id FROM authors WHERE name = $1
`
	var authorID string
	err := tx.QueryRow(ctx, query, name).Scan(&authorID)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("no author named %q: %w", name, entity.ErrAuthorNotFound)
	}

	if err != nil {
		return "", err
	}

	return authorID, nil
}

package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/bookypedia/internal/entity"
	"github.com/stretchr/testify/require"
)

var tagColumns = []string{"book_id", "tag"}

func Test_booksRepository_Save(t *testing.T) {
	t.Parallel()

	authorID := entity.NewAuthorID()

	tests := []struct {
		name       string
		book       entity.Book
		errL       errLayer
		errRequire error
	}{
		{
			name: "ok without tags",
			book: entity.NewBook(entity.NewBookID(), authorID, "Fellowship", 1954, nil),
			errL: null,
		},
		{
			name: "ok with tags",
			book: entity.NewBook(entity.NewBookID(), authorID, "Fellowship", 1954, []string{"fantasy", "epic"}),
			errL: null,
		},
		{
			name:       "book insert failure",
			book:       entity.NewBook(entity.NewBookID(), authorID, "Fellowship", 1954, []string{"epic"}),
			errL:       db,
			errRequire: entity.ErrTransactionFailure,
		},
		{
			name:       "tag violates constraint and nothing is committed",
			book:       entity.NewBook(entity.NewBookID(), authorID, "Fellowship", 1954, []string{"a", "b", "c"}),
			errL:       scan,
			errRequire: entity.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			ctx := context.Background()
			book := tt.book

			mock.ExpectBegin()
			mock.ExpectExec(lockBooks).WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))

			insert := mock.ExpectExec(`INSERT INTO books`).
				WithArgs(book.ID().String(), book.AuthorID().String(), book.Title(), book.PublicationYear())
			if tt.errL == db {
				insert.WillReturnError(errInternal)
			} else {
				insert.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			if book.HasTags() && tt.errL != db {
				copyTags := mock.ExpectCopyFrom(pgx.Identifier{"book_tags"}, tagColumns)
				if tt.errL == scan {
					copyTags.WillReturnError(pgError(ErrStringDataRightTruncation, ""))
				} else {
					copyTags.WillReturnResult(int64(len(book.Tags())))
				}
			}

			if tt.errRequire != nil {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			err := New(nil, mock).Books().Save(ctx, book)
			if tt.errRequire == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.errRequire)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_booksRepository_ShowBooks(t *testing.T) {
	t.Parallel()

	want := []entity.BookSummary{
		{ID: entity.NewBookID(), Title: "Alpha", AuthorName: "A", PublicationYear: 1990},
		{ID: entity.NewBookID(), Title: "Alpha", AuthorName: "A", PublicationYear: 2010},
		{ID: entity.NewBookID(), Title: "Zeta", AuthorName: "A", PublicationYear: 2000},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"id", "title", "name", "publication_year"})
		for _, b := range want {
			rows.AddRow(b.ID.String(), b.Title, b.AuthorName, b.PublicationYear)
		}
		mock.ExpectQuery(`ORDER BY books.title, authors.name, books.publication_year`).WillReturnRows(rows)

		books, err := New(nil, mock).Books().ShowBooks(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, books)
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`SELECT books.id`).WillReturnError(errInternal)

		books, err := New(nil, mock).Books().ShowBooks(context.Background())
		require.Nil(t, books)
		require.ErrorIs(t, err, entity.ErrTransactionFailure)
		require.ErrorIs(t, err, errInternal)
	})
}

func Test_booksRepository_ShowBook(t *testing.T) {
	t.Parallel()

	const title = "Fellowship"
	first := entity.BookDetails{
		BookSummary: entity.BookSummary{ID: entity.NewBookID(), Title: title, AuthorName: "Tolkien", PublicationYear: 1954},
		Tags:        []string{"epic", "fantasy"},
	}
	second := entity.BookDetails{
		BookSummary: entity.BookSummary{ID: entity.NewBookID(), Title: title, AuthorName: "Other", PublicationYear: 2001},
		Tags:        nil,
	}

	tests := []struct {
		name       string
		want       []entity.BookDetails
		errRequire error
	}{
		{name: "two books with the same title", want: []entity.BookDetails{second, first}},
		{name: "no such title", want: []entity.BookDetails{}},
		{name: "query failure", want: nil, errRequire: entity.ErrTransactionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			expected := mock.ExpectQuery(`WHERE books.title = \$1`).WithArgs(title)
			if tt.errRequire != nil {
				expected.WillReturnError(errInternal)
			} else {
				rows := pgxmock.NewRows([]string{"id", "title", "name", "publication_year", "tags"})
				for _, b := range tt.want {
					tags := b.Tags
					if tags == nil {
						tags = []string{}
					}
					rows.AddRow(b.ID.String(), b.Title, b.AuthorName, b.PublicationYear, tags)
				}
				expected.WillReturnRows(rows)
			}

			books, err := New(nil, mock).Books().ShowBook(context.Background(), title)
			require.Equal(t, tt.want, books)
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_booksRepository_GetAuthorBooks(t *testing.T) {
	t.Parallel()

	authorID := entity.NewAuthorID()
	want := []entity.Book{
		entity.NewBook(entity.NewBookID(), authorID, "Hobbit", 1937, nil),
		entity.NewBook(entity.NewBookID(), authorID, "Fellowship", 1954, []string{"epic"}),
	}

	mock := newMock(t)
	rows := pgxmock.NewRows([]string{"id", "title", "publication_year", "tags"})
	for _, b := range want {
		tags := b.Tags()
		if tags == nil {
			tags = []string{}
		}
		rows.AddRow(b.ID().String(), b.Title(), b.PublicationYear(), tags)
	}
	mock.ExpectQuery(`ORDER BY books.publication_year, books.title`).WithArgs(authorID.String()).WillReturnRows(rows)

	books, err := New(nil, mock).Books().GetAuthorBooks(context.Background(), authorID)
	require.NoError(t, err)
	require.Equal(t, want, books)
}

func Test_booksRepository_DeleteBook(t *testing.T) {
	t.Parallel()

	bookID := entity.NewBookID()

	tests := []struct {
		name       string
		errL       errLayer
		errRequire error
	}{
		{name: "ok deletes tags then book", errL: null},
		{name: "unknown book", errL: notFound, errRequire: entity.ErrBookNotFound},
		{name: "failure while deleting tags", errL: db, errRequire: entity.ErrTransactionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectExec(lockBooks).WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))

			lookup := mock.ExpectQuery(`SELECT title FROM books WHERE id`).WithArgs(bookID.String())
			switch tt.errL {
			case notFound:
				lookup.WillReturnRows(pgxmock.NewRows([]string{"title"}))
				mock.ExpectRollback()
			case db:
				lookup.WillReturnRows(pgxmock.NewRows([]string{"title"}).AddRow("Fellowship"))
				mock.ExpectExec(`DELETE FROM book_tags WHERE book_id`).WithArgs(bookID.String()).
					WillReturnError(errInternal)
				mock.ExpectRollback()
			default:
				lookup.WillReturnRows(pgxmock.NewRows([]string{"title"}).AddRow("Fellowship"))
				mock.ExpectExec(`DELETE FROM book_tags WHERE book_id`).WithArgs(bookID.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectExec(`DELETE FROM books WHERE id`).WithArgs(bookID.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			}

			err := New(nil, mock).Books().DeleteBook(context.Background(), bookID)
			if tt.errRequire == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.errRequire)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_booksRepository_EditBook(t *testing.T) {
	t.Parallel()

	bookID := entity.NewBookID()
	const (
		title = "Fellowship of the Ring"
		year  = 1954
	)

	tests := []struct {
		name       string
		tags       []string
		errL       errLayer
		errRequire error
	}{
		{name: "replaces tag set", tags: []string{"fantasy", "epic", "fantasy"}, errL: null},
		{name: "clears tags", tags: nil, errL: null},
		{name: "unknown book", tags: []string{"epic"}, errL: notFound, errRequire: entity.ErrBookNotFound},
		{name: "new tag set rejected", tags: []string{"epic"}, errL: scan, errRequire: entity.ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectExec(lockBooks).WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))

			lookup := mock.ExpectQuery(`SELECT title FROM books WHERE id`).WithArgs(bookID.String())
			if tt.errL == notFound {
				lookup.WillReturnRows(pgxmock.NewRows([]string{"title"}))
				mock.ExpectRollback()
			} else {
				lookup.WillReturnRows(pgxmock.NewRows([]string{"title"}).AddRow("Fellowship"))
				mock.ExpectExec(`UPDATE books SET title = \$1, publication_year = \$2`).
					WithArgs(title, year, bookID.String()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(`DELETE FROM book_tags WHERE book_id`).WithArgs(bookID.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 5))

				if len(tt.tags) > 0 {
					copyTags := mock.ExpectCopyFrom(pgx.Identifier{"book_tags"}, tagColumns)
					if tt.errL == scan {
						copyTags.WillReturnError(pgError(ErrStringDataRightTruncation, ""))
					} else {
						copyTags.WillReturnResult(int64(len(entity.NormalizeTags(tt.tags))))
					}
				}

				if tt.errRequire != nil {
					mock.ExpectRollback()
				} else {
					mock.ExpectCommit()
				}
			}

			err := New(nil, mock).Books().EditBook(context.Background(), title, year, tt.tags, bookID)
			if tt.errRequire == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.errRequire)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

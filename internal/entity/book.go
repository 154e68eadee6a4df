package entity

import (
	"slices"

	"github.com/samber/lo"
)

type Book struct {
	id              BookID
	authorID        AuthorID
	title           string
	publicationYear int
	tags            []string
}

// NewBook keeps tags as a sorted set. A nil or empty tags slice means the
// book has no tags.
func NewBook(id BookID, authorID AuthorID, title string, publicationYear int, tags []string) Book {
	return Book{
		id:              id,
		authorID:        authorID,
		title:           title,
		publicationYear: publicationYear,
		tags:            NormalizeTags(tags),
	}
}

func (b Book) ID() BookID {
	return b.id
}

func (b Book) AuthorID() AuthorID {
	return b.authorID
}

func (b Book) Title() string {
	return b.title
}

func (b Book) PublicationYear() int {
	return b.publicationYear
}

func (b Book) Tags() []string {
	return slices.Clone(b.tags)
}

func (b Book) HasTags() bool {
	return len(b.tags) > 0
}

// NormalizeTags removes duplicates and sorts. Tags are case-sensitive.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	set := lo.Uniq(tags)
	slices.Sort(set)
	return set
}

type BookSummary struct {
	ID              BookID
	Title           string
	AuthorName      string
	PublicationYear int
}

type BookDetails struct {
	BookSummary
	Tags []string
}

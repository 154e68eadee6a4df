package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/bookypedia/internal/entity"
	"github.com/samber/lo"
)

const (
	maxNameLength  = 100
	maxTitleLength = 100
	maxTagLength   = 30
)

var (
	errInvalidIndex   = errors.New("invalid list index")
	errInvalidArgs    = errors.New("invalid command arguments")
	errAuthorDeclined = errors.New("author creation declined")
)

func (i *implementation) readLine() (string, bool) {
	if !i.input.Scan() {
		return "", false
	}
	return strings.TrimSpace(i.input.Text()), true
}

// prompt prints msg and reads the answer. End of input reads as an empty line.
func (i *implementation) prompt(msg string) string {
	i.println(msg)
	line, _ := i.readLine()
	return line
}

func (i *implementation) println(msg string) {
	_, _ = fmt.Fprintln(i.output, msg)
}

func printList[T any](w io.Writer, items []T, format func(T) string) {
	for n, item := range items {
		_, _ = fmt.Fprintf(w, "%d %s\n", n+1, format(item))
	}
}

func formatSummary(b entity.BookSummary) string {
	return fmt.Sprintf("%s by %s, %d", b.Title, b.AuthorName, b.PublicationYear)
}

func formatAuthorBook(b entity.Book) string {
	return fmt.Sprintf("%s, %d", b.Title(), b.PublicationYear())
}

func (i *implementation) printBook(b entity.BookDetails) {
	i.println("Title: " + b.Title)
	i.println("Author: " + b.AuthorName)
	i.println("Publication year: " + strconv.Itoa(b.PublicationYear))
	if len(b.Tags) > 0 {
		i.println("Tags: " + strings.Join(b.Tags, ", "))
	}
}

func chooseIndex(line string, n int) (int, error) {
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > n {
		return 0, fmt.Errorf("%w: %q", errInvalidIndex, line)
	}
	return idx - 1, nil
}

// parseTags splits a comma separated line into a sorted set. Each tag is
// trimmed and its inner whitespace runs collapse to one space.
func parseTags(line string) []string {
	tags := lo.FilterMap(strings.Split(line, ","), func(tag string, _ int) (string, bool) {
		tag = strings.Join(strings.Fields(tag), " ")
		return tag, tag != ""
	})
	return entity.NormalizeTags(tags)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: publication year %q", errInvalidArgs, s)
	}
	return year, nil
}

// parseBookArgs reads "<pub year> <title>".
func parseBookArgs(args string) (int, string, error) {
	yearStr, title, _ := strings.Cut(args, " ")
	year, err := parseYear(yearStr)
	if err != nil {
		return 0, "", err
	}
	return year, strings.TrimSpace(title), nil
}

func validateName(name string) error {
	return validation.Validate(name, validation.Required, validation.RuneLength(1, maxNameLength))
}

func validateTitle(title string) error {
	return validation.Validate(title, validation.Required, validation.RuneLength(1, maxTitleLength))
}

func validateTags(tags []string) error {
	return validation.Validate(tags, validation.Each(validation.Required, validation.RuneLength(1, maxTagLength)))
}

// selectAuthor lists the authors and reads a 1-based pick. ok is false when the
// user cancels with an empty line.
func (i *implementation) selectAuthor(ctx context.Context) (entity.Author, bool, error) {
	i.println("Select author:")
	authors, err := i.authorUseCase.ShowAuthors(ctx)
	if err != nil {
		return entity.Author{}, false, err
	}

	printList(i.output, authors, entity.Author.Name)
	line := i.prompt("Enter author # or empty line to cancel")
	if line == "" {
		return entity.Author{}, false, nil
	}

	idx, err := chooseIndex(line, len(authors))
	if err != nil {
		return entity.Author{}, false, err
	}
	return authors[idx], true, nil
}

func (i *implementation) selectBook(ctx context.Context) (entity.BookSummary, bool, error) {
	books, err := i.booksUseCase.ShowBooks(ctx)
	if err != nil {
		return entity.BookSummary{}, false, err
	}

	printList(i.output, books, formatSummary)
	line := i.prompt("Enter the book # or empty line to cancel:")
	if line == "" {
		return entity.BookSummary{}, false, nil
	}

	idx, err := chooseIndex(line, len(books))
	if err != nil {
		return entity.BookSummary{}, false, err
	}
	return books[idx], true, nil
}

// resolveBook finds the book a ShowBook, DeleteBook or EditBook command is about.
// An empty title selects from the whole catalog, several books with the same
// title are disambiguated by number.
func (i *implementation) resolveBook(ctx context.Context, title string) (entity.BookDetails, bool, error) {
	if title == "" {
		summary, ok, err := i.selectBook(ctx)
		if err != nil || !ok {
			return entity.BookDetails{}, false, err
		}

		books, err := i.booksUseCase.ShowBook(ctx, summary.Title)
		if err != nil {
			return entity.BookDetails{}, false, err
		}

		book, found := lo.Find(books, func(b entity.BookDetails) bool {
			return b.ID == summary.ID
		})
		if !found {
			return entity.BookDetails{}, false, entity.ErrBookNotFound
		}
		return book, true, nil
	}

	books, err := i.booksUseCase.ShowBook(ctx, title)
	if err != nil {
		return entity.BookDetails{}, false, err
	}

	switch len(books) {
	case 0:
		return entity.BookDetails{}, false, entity.ErrBookNotFound
	case 1:
		return books[0], true, nil
	}

	printList(i.output, books, func(b entity.BookDetails) string {
		return formatSummary(b.BookSummary)
	})
	line := i.prompt("Enter the book # or empty line to cancel:")
	if line == "" {
		return entity.BookDetails{}, false, nil
	}

	idx, err := chooseIndex(line, len(books))
	if err != nil {
		return entity.BookDetails{}, false, err
	}
	return books[idx], true, nil
}

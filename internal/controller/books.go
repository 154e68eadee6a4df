package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/project/bookypedia/internal/entity"
	"github.com/samber/lo"
)

func (i *implementation) AddBook(ctx context.Context, args string) error {
	year, title, err := parseBookArgs(args)
	if err != nil {
		return err
	}
	if err = validateTitle(title); err != nil {
		return err
	}

	var (
		authorID  entity.AuthorID
		newAuthor bool
	)

	authorName := i.prompt("Enter author name or empty line to select from list:")
	if authorName == "" {
		author, ok, err := i.selectAuthor(ctx)
		if err != nil || !ok {
			return err
		}
		authorID = author.ID()
	} else {
		authors, err := i.authorUseCase.ShowAuthors(ctx)
		if err != nil {
			return err
		}

		author, found := lo.Find(authors, func(a entity.Author) bool {
			return a.Name() == authorName
		})
		if found {
			authorID = author.ID()
		} else {
			answer := i.prompt(fmt.Sprintf("No author found. Do you want to add %s (y/n)?", authorName))
			if !strings.EqualFold(answer, "y") {
				return errAuthorDeclined
			}
			if err = validateName(authorName); err != nil {
				return err
			}
			newAuthor = true
		}
	}

	tags := parseTags(i.prompt("Enter tags (comma separated):"))
	if err = validateTags(tags); err != nil {
		return err
	}

	if newAuthor {
		_, err = i.booksUseCase.AddBookWithAuthor(ctx, year, title, authorName, tags)
		return err
	}

	_, err = i.booksUseCase.AddBook(ctx, year, title, authorID, tags)
	return err
}

func (i *implementation) ShowBooks(ctx context.Context, _ string) error {
	books, err := i.booksUseCase.ShowBooks(ctx)
	if err != nil {
		return err
	}

	printList(i.output, books, formatSummary)
	return nil
}

// ShowBook prints nothing for an unknown title.
func (i *implementation) ShowBook(ctx context.Context, args string) error {
	book, ok, err := i.resolveBook(ctx, args)
	if errors.Is(err, entity.ErrBookNotFound) {
		return nil
	}
	if err != nil || !ok {
		return err
	}

	i.printBook(book)
	return nil
}

func (i *implementation) DeleteBook(ctx context.Context, args string) error {
	book, ok, err := i.resolveBook(ctx, args)
	if err != nil || !ok {
		return err
	}

	return i.booksUseCase.DeleteBook(ctx, book.ID)
}

// EditBook overwrites title, year and the whole tag set. Empty title or year
// keep the current value, an empty tag line clears the tags.
func (i *implementation) EditBook(ctx context.Context, args string) error {
	book, ok, err := i.resolveBook(ctx, args)
	if err != nil || !ok {
		return err
	}

	title := i.prompt(fmt.Sprintf("Enter new title or empty line to use the current one (%s):", book.Title))
	if title == "" {
		title = book.Title
	}
	if err = validateTitle(title); err != nil {
		return err
	}

	year := book.PublicationYear
	if line := i.prompt(fmt.Sprintf("Enter publication year or empty line to use the current one (%d):", year)); line != "" {
		if year, err = parseYear(line); err != nil {
			return err
		}
	}

	tags := parseTags(i.prompt(fmt.Sprintf("Enter tags (current tags: %s):", strings.Join(book.Tags, ", "))))
	if err = validateTags(tags); err != nil {
		return err
	}

	return i.booksUseCase.EditBook(ctx, title, year, tags, book.ID)
}

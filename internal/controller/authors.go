package controller

import (
	"context"

	"github.com/project/bookypedia/internal/entity"
)

func (i *implementation) AddAuthor(ctx context.Context, args string) error {
	if err := validateName(args); err != nil {
		return err
	}

	_, err := i.authorUseCase.AddAuthor(ctx, args)
	return err
}

func (i *implementation) DeleteAuthor(ctx context.Context, args string) error {
	name := args
	if name == "" {
		author, ok, err := i.selectAuthor(ctx)
		if err != nil || !ok {
			return err
		}
		name = author.Name()
	}

	return i.authorUseCase.DeleteAuthor(ctx, name)
}

func (i *implementation) EditAuthor(ctx context.Context, args string) error {
	oldName := args
	if oldName == "" {
		author, ok, err := i.selectAuthor(ctx)
		if err != nil || !ok {
			return err
		}
		oldName = author.Name()
	}

	newName := i.prompt("Enter new name:")
	if err := validateName(newName); err != nil {
		return err
	}

	return i.authorUseCase.EditAuthor(ctx, newName, oldName)
}

func (i *implementation) ShowAuthors(ctx context.Context, _ string) error {
	authors, err := i.authorUseCase.ShowAuthors(ctx)
	if err != nil {
		return err
	}

	printList(i.output, authors, entity.Author.Name)
	return nil
}

func (i *implementation) ShowAuthorBooks(ctx context.Context, _ string) error {
	author, ok, err := i.selectAuthor(ctx)
	if err != nil || !ok {
		return err
	}

	books, err := i.booksUseCase.GetAuthorBooks(ctx, author.ID())
	if err != nil {
		return err
	}

	printList(i.output, books, formatAuthorBook)
	return nil
}

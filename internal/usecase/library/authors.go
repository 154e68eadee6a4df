package library

import (
	"context"

	"github.com/project/bookypedia/internal/entity"
	"github.com/project/bookypedia/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) AddAuthor(ctx context.Context, name string) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddAuthor(l.logger, "Start of add author", traceID, name)

	author := entity.NewAuthor(entity.NewAuthorID(), name)
	err := l.authorRepository.Save(ctx, author)

	if log.ErrorAddAuthor(l.logger, err, "Failed add author", traceID, name) {
		span.SetAttributes(attribute.String("author_name", name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.String("author_id", author.ID().String()))
	log.InfoAddAuthor(l.logger, "Added the author", traceID, name, author.ID().String())
	return author, nil
}

func (l *libraryImpl) DeleteAuthor(ctx context.Context, name string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_name", name))
	log.InfoDeleteAuthor(l.logger, "Start of delete author", traceID, name)

	err := l.authorRepository.Delete(ctx, name)

	if log.ErrorDeleteAuthor(l.logger, err, "Failed delete author", traceID, name) {
		span.RecordError(err)
	} else {
		log.InfoDeleteAuthor(l.logger, "Deleted the author with books", traceID, name)
	}

	return err
}

func (l *libraryImpl) EditAuthor(ctx context.Context, newName, oldName string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_name", oldName))
	log.InfoEditAuthor(l.logger, "Start of edit author", traceID, newName, oldName)

	err := l.authorRepository.Edit(ctx, newName, oldName)

	if log.ErrorEditAuthor(l.logger, err, "Failed edit author", traceID, newName, oldName) {
		span.RecordError(err)
	} else {
		log.InfoEditAuthor(l.logger, "Renamed the author", traceID, newName, oldName)
	}

	return err
}

func (l *libraryImpl) ShowAuthors(ctx context.Context) ([]entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	authors, err := l.authorRepository.GetAuthors(ctx)

	if log.ErrorShowAuthors(l.logger, err, "Failed show authors", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoShowAuthors(l.logger, "Got the authors", traceID, len(authors))
	return authors, nil
}

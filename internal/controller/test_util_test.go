package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/project/bookypedia/internal/controller/mocks"
	"github.com/project/bookypedia/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	errInternal = errors.New("internal error")
	tooLongName = strings.Repeat("Too long name", 10)
)

type session struct {
	authors *mocks.MockAuthorUseCase
	books   *mocks.MockBooksUseCase
	service *implementation
	output  *bytes.Buffer
}

func initSession(t *testing.T, input ...string) session {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	s := session{
		authors: mocks.NewMockAuthorUseCase(ctrl),
		books:   mocks.NewMockBooksUseCase(ctrl),
		output:  &bytes.Buffer{},
	}
	s.service = New(logger, s.books, s.authors, strings.NewReader(lines(input...)), s.output)
	return s
}

func (s session) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, s.service.Run(context.Background()))
	return s.output.String()
}

func lines(l ...string) string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}

var (
	tolkien = entity.NewAuthor(entity.NewAuthorID(), "Tolkien")
	asimov  = entity.NewAuthor(entity.NewAuthorID(), "Asimov")
)

func summary(title, author string, year int) entity.BookSummary {
	return entity.BookSummary{
		ID:              entity.NewBookID(),
		Title:           title,
		AuthorName:      author,
		PublicationYear: year,
	}
}

func details(s entity.BookSummary, tags ...string) entity.BookDetails {
	return entity.BookDetails{BookSummary: s, Tags: entity.NormalizeTags(tags)}
}

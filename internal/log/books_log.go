package log

import (
	"github.com/project/bookypedia/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, traceID, title, authorID string, tags []string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.String("author_id", authorID),
			zap.Strings("book_tags", tags),
			zap.String("action", AddBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", id[0]),
		zap.String("book_title", title),
		zap.String("author_id", authorID),
		zap.Strings("book_tags", tags),
		zap.String("action", AddBook))
}

func ErrorAddBook(l *zap.Logger, err error, msg string, traceID, title, authorID string, tags []string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("author_id", authorID),
		zap.Strings("book_tags", tags),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoAddBookWithAuthor(l *zap.Logger, msg string, traceID, title, authorName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("author_name", authorName),
		zap.String("action", AddBookWithAuthor))
}

func ErrorAddBookWithAuthor(l *zap.Logger, err error, msg string, traceID, title, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", AddBookWithAuthor))
}

func InfoShowBooks(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("count", count),
		zap.String("action", ShowBooks))
}

func ErrorShowBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", ShowBooks))
}

func InfoShowBook(l *zap.Logger, msg string, traceID, title string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Int("count", count),
		zap.String("action", ShowBook))
}

func ErrorShowBook(l *zap.Logger, err error, msg string, traceID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", ShowBook))
}

func InfoGetAuthorBooks(l *zap.Logger, msg string, traceID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.String("action", GetAuthorBooks))
}

func ErrorGetAuthorBooks(l *zap.Logger, err error, msg string, traceID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", GetAuthorBooks))
}

func InfoDeleteBook(l *zap.Logger, msg string, traceID, bookID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("action", DeleteBook))
}

func ErrorDeleteBook(l *zap.Logger, err error, msg string, traceID, bookID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", DeleteBook))
}

func InfoEditBook(l *zap.Logger, msg string, traceID, bookID, title string, year int, tags []string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("book_title", title),
		zap.Int("publication_year", year),
		zap.Strings("book_tags", tags),
		zap.String("action", EditBook))
}

func ErrorEditBook(l *zap.Logger, err error, msg string, traceID, bookID, title string, year int, tags []string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("book_title", title),
		zap.Int("publication_year", year),
		zap.Strings("book_tags", tags),
		zap.Error(err),
		zap.String("action", EditBook))
}

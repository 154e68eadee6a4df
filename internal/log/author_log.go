package log

import (
	"github.com/project/bookypedia/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddAuthor(l *zap.Logger, msg string, traceID, authorName string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("author_name", authorName),
			zap.String("action", AddAuthor))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", id[0]),
		zap.String("author_name", authorName),
		zap.String("action", AddAuthor))
}

func ErrorAddAuthor(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", AddAuthor))
}

func InfoDeleteAuthor(l *zap.Logger, msg string, traceID, authorName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.String("action", DeleteAuthor))
}

func ErrorDeleteAuthor(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", DeleteAuthor))
}

func InfoEditAuthor(l *zap.Logger, msg string, traceID, newName, oldName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", newName),
		zap.String("old_author_name", oldName),
		zap.String("action", EditAuthor))
}

func ErrorEditAuthor(l *zap.Logger, err error, msg string, traceID, newName, oldName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", newName),
		zap.String("old_author_name", oldName),
		zap.Error(err),
		zap.String("action", EditAuthor))
}

func InfoShowAuthors(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("count", count),
		zap.String("action", ShowAuthors))
}

func ErrorShowAuthors(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", ShowAuthors))
}

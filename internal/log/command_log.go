package log

import (
	"github.com/project/bookypedia/pkg/logger"
	"go.uber.org/zap"
)

func InfoCommand(l *zap.Logger, msg string, traceID, command, args string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("command", command),
		zap.String("args", args))
}

func ErrorCommand(l *zap.Logger, err error, msg string, traceID, command, args string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("command", command),
		zap.String("args", args),
		zap.Error(err))
}

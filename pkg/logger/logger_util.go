package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

// Enabled returns l when the layer's logging switch is on and nil otherwise.
// Every helper in this package treats a nil logger as disabled.
func Enabled(l *zap.Logger, on bool) *zap.Logger {
	if on {
		return l
	}
	return nil
}

// NewFileLogger writes JSON lines to path. The terminal is left to the
// interactive session.
func NewFileLogger(path string) (*zap.Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)

	if err != nil {
		return nil, err
	}

	writeSyncer := zapcore.AddSync(file)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}

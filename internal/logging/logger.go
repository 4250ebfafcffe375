// Package logging writes structured logs to a rotating file. The terminal
// belongs to the game screen, so nothing goes to stdout or stderr.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing console-encoded lines to filePath.
// The file rolls over at 10MB, keeping 3 backups for 7 days.
func New(filePath string, level zapcore.Level) *zap.Logger {
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}

	return zap.New(newCore(zapcore.AddSync(lj), level), zap.AddCaller())
}

func newCore(ws zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
}

// Sync flushes buffered entries, ignoring errors from unsyncable files
func Sync(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}

// Package logger provides tooling for structured logging.
// With logger, you can use context to add logging details to your call stack.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured log entries to Out.
type Logger struct {
	// Out is where the log entries are written. Defaults to os.Stderr.
	Out io.Writer
	// Level is the minimum level that gets written. Defaults to LevelInfo.
	Level Level
	// Format selects the entry encoding. Defaults to FormatJSON.
	Format Format

	mutex sync.Mutex
	zap   *zap.Logger
}

const (
	levelKey     = "level"
	messageKey   = "message"
	timestampKey = "timestamp"
)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, zapcore.DebugLevel, msg, ds)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, zapcore.InfoLevel, msg, ds)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, zapcore.WarnLevel, msg, ds)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, zapcore.ErrorLevel, msg, ds)
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	return l.getZap().Sync()
}

func (l *Logger) log(ctx context.Context, level zapcore.Level, msg string, ds []Detail) {
	ce := l.getZap().Check(level, msg)
	if ce == nil {
		return
	}
	fields := getDetailsFromContext(ctx)
	for _, d := range ds {
		fields = d.appendTo(fields)
	}
	ce.Write(fields...)
}

// getZap builds the zap logger on first use,
// so the exported fields must be set before the first log call.
func (l *Logger) getZap() *zap.Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.zap == nil {
		l.zap = zap.New(zapcore.NewCore(l.encoder(), zapcore.AddSync(l.writer()), l.Level.zapLevel()))
	}
	return l.zap
}

func (l *Logger) encoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.LevelKey = levelKey
	cfg.MessageKey = messageKey
	cfg.TimeKey = timestampKey
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	if l.Format == FormatConsole {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

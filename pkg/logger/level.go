package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger writes.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) String() string { return string(l) }

var textToLevel = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

// ParseLevel accepts the level names and their first letter, case insensitive.
func ParseLevel(raw string) (Level, error) {
	if level, ok := textToLevel[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level, nil
	}
	return "", fmt.Errorf("unknown logging level: %q", raw)
}

var levelToZap = map[Level]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
}

func (l Level) zapLevel() zapcore.Level {
	if zl, ok := levelToZap[l]; ok {
		return zl
	}
	return zapcore.InfoLevel
}

// Format is the encoding of log entries.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// ParseFormat accepts "json" and "console".
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatConsole:
		return f, nil
	default:
		return "", fmt.Errorf("unknown logging format: %q", raw)
	}
}

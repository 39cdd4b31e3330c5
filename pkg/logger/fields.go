package logger

import (
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Detail is structured data attached to a log entry.
type Detail interface {
	appendTo([]zap.Field) []zap.Field
}

// Field attaches value under key.
func Field(key string, value any) Detail {
	return field{Field: zap.Any(key, value)}
}

type field struct{ zap.Field }

func (f field) appendTo(fs []zap.Field) []zap.Field {
	return append(fs, f.Field)
}

// Fields attaches every key of the map, in key order.
type Fields map[string]any

func (fields Fields) appendTo(fs []zap.Field) []zap.Field {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		fs = Field(k, fields[k]).appendTo(fs)
	}
	return fs
}

// ErrField attaches err under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return field{Field: zap.Error(err)}
}

type nullDetail struct{}

func (nullDetail) appendTo(fs []zap.Field) []zap.Field { return fs }

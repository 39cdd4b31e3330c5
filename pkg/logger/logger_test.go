package logger_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.llib.dev/patterns/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleStub() {
	var tb testing.TB
	buf := logger.Stub(tb) // stub will clean up after itself when the test is finished
	logger.Info(context.Background(), "foo")
	strings.Contains(buf.String(), "foo") // true
}

func ExampleContextWith() {
	ctx := logger.ContextWith(context.Background(), logger.Field("squad", "rangers"))
	logger.Info(ctx, "squad assembled") // will carry the squad field
}

func TestLogger(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		buf   = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		level = testcase.Let(s, func(t *testcase.T) logger.Level { return logger.LevelInfo })
		l     = testcase.Let(s, func(t *testcase.T) *logger.Logger {
			return &logger.Logger{Out: buf.Get(t), Level: level.Get(t)}
		})
	)

	s.Then("message and level are written as JSON", func(t *testcase.T) {
		l.Get(t).Info(context.Background(), "hello")
		assert.Contains(t, buf.Get(t).String(), `"message":"hello"`)
		assert.Contains(t, buf.Get(t).String(), `"level":"info"`)
	})

	s.Then("fields are part of the entry", func(t *testcase.T) {
		l.Get(t).Warn(context.Background(), "hello", logger.Field("foo", "bar"), logger.Field("n", 42))
		assert.Contains(t, buf.Get(t).String(), `"foo":"bar"`)
		assert.Contains(t, buf.Get(t).String(), `"n":42`)
	})

	s.Then("Fields are written in key order", func(t *testcase.T) {
		l.Get(t).Info(context.Background(), "hello", logger.Fields{"b": 2, "a": 1})
		out := buf.Get(t).String()
		assert.Contains(t, out, `"a":1,"b":2`)
	})

	s.Then("debug entries are filtered out", func(t *testcase.T) {
		l.Get(t).Debug(context.Background(), "hello")
		assert.Empty(t, buf.Get(t).String())
	})

	s.When("level is debug", func(s *testcase.Spec) {
		level.Let(s, func(t *testcase.T) logger.Level { return logger.LevelDebug })

		s.Then("debug entries are written", func(t *testcase.T) {
			l.Get(t).Debug(context.Background(), "hello")
			assert.Contains(t, buf.Get(t).String(), `"level":"debug"`)
		})
	})

	s.When("level is error", func(s *testcase.Spec) {
		level.Let(s, func(t *testcase.T) logger.Level { return logger.LevelError })

		s.Then("only error entries are written", func(t *testcase.T) {
			l.Get(t).Warn(context.Background(), "nope")
			l.Get(t).Error(context.Background(), "boom", logger.ErrField(errors.New("bang")))
			out := buf.Get(t).String()
			assert.NotContains(t, out, "nope")
			assert.Contains(t, out, `"message":"boom"`)
			assert.Contains(t, out, `"error":"bang"`)
		})
	})

	s.Test("nil error field is skipped", func(t *testcase.T) {
		l.Get(t).Info(context.Background(), "hello", logger.ErrField(nil))
		assert.NotContains(t, buf.Get(t).String(), `"error"`)
	})

	s.Test("console format", func(t *testcase.T) {
		var out bytes.Buffer
		cl := &logger.Logger{Out: &out, Format: logger.FormatConsole}
		cl.Info(context.Background(), "hello")
		assert.Contains(t, out.String(), "hello")
		assert.NotContains(t, out.String(), `"message"`)
	})
}

func TestContextWith(t *testing.T) {
	buf := logger.Stub(t)

	ctx := logger.ContextWith(context.Background(), logger.Field("platoon", "black-hawk"))
	ctx = logger.ContextWith(ctx, logger.Field("squad", "rangers"))
	logger.Info(ctx, "hello", logger.Field("unit", "josh"))

	out := buf.String()
	assert.Contains(t, out, `"platoon":"black-hawk","squad":"rangers","unit":"josh"`)

	assert.Equal(t, ctx, logger.ContextWith(ctx))
}

func TestStub(t *testing.T) {
	og := logger.Default
	t.Run("", func(t *testing.T) {
		buf := logger.Stub(t)
		assert.NotEqual(t, og, logger.Default)
		logger.Debug(context.Background(), "hello")
		assert.Contains(t, buf.String(), `"message":"hello"`)
	})
	assert.Equal(t, og, logger.Default, "logger has been restored")
}

func TestParseLevel(t *testing.T) {
	for raw, exp := range map[string]logger.Level{
		"debug": logger.LevelDebug,
		"INFO":  logger.LevelInfo,
		" w ":   logger.LevelWarn,
		"e":     logger.LevelError,
	} {
		got, err := logger.ParseLevel(raw)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	got, err := logger.ParseFormat("Console")
	assert.NoError(t, err)
	assert.Equal(t, logger.FormatConsole, got)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}

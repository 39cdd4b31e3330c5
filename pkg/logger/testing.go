package logger

import (
	"bytes"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// The stub logs every level, and logger.Default is restored after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	og := Default
	tb.Cleanup(func() { Default = og })
	buf := &bytes.Buffer{}
	Default = &Logger{Out: buf, Level: LevelDebug}
	return buf
}

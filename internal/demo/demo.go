// Package demo runs an example's demonstration routine as a process.
package demo

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.llib.dev/patterns/internal/config"
	"go.llib.dev/patterns/pkg/logger"
)

const (
	// ExitCodeOK : Success
	ExitCodeOK = 0
	// ExitCodeError : General Error
	ExitCodeError = 1
	// ExitCodeBadRequest : the environment carries an invalid configuration.
	ExitCodeBadRequest = 2
)

// Func is a demonstration routine, it writes its human readable output to w.
type Func func(ctx context.Context, w io.Writer) error

// Main runs fn against the process standard streams and exits.
func Main(name string, fn Func) {
	os.Exit(Run(context.Background(), name, fn, os.Stdout, os.Stderr, nil))
}

// Run executes fn and returns the exit code for it.
// Demo output goes to stdout, log entries go to stderr.
// A nil environ means the process environment.
func Run(ctx context.Context, name string, fn Func, stdout, stderr io.Writer, environ map[string]string) int {
	c, err := config.Load(environ)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitCodeBadRequest
	}
	l, err := c.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitCodeBadRequest
	}
	logger.Default = l
	defer func() { _ = l.Sync() }()

	ctx = logger.ContextWith(ctx, logger.Field("demo", name))
	logger.Debug(ctx, "demo started")
	if err := fn(ctx, stdout); err != nil {
		logger.Error(ctx, "demo failed", logger.ErrField(err))
		return ExitCodeError
	}
	logger.Debug(ctx, "demo finished")
	return ExitCodeOK
}

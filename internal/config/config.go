// Package config loads the ambient configuration of the example binaries from the environment.
package config

import (
	"io"

	"github.com/caarlos0/env/v11"

	"go.llib.dev/patterns/pkg/errorkit"
	"go.llib.dev/patterns/pkg/logger"
)

const ErrInvalid errorkit.Error = "invalid configuration"

// Prefix is prepended to every environment variable name.
const Prefix = "PATTERNS_"

// Config is the ambient configuration read from PATTERNS_ prefixed environment variables.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from environ.
// A nil environ means the process environment.
func Load(environ map[string]string) (Config, error) {
	var c Config
	opts := env.Options{Prefix: Prefix, Environment: environ}
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, ErrInvalid.Wrap(err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return Config{}, ErrInvalid.Wrap(err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return Config{}, ErrInvalid.Wrap(err)
	}
	return c, nil
}

// Logger builds a logger that writes to out with the configured level and format.
func (c Config) Logger(out io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, ErrInvalid.Wrap(err)
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, ErrInvalid.Wrap(err)
	}
	return &logger.Logger{Out: out, Level: level, Format: format}, nil
}

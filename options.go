package projections

import (
	"log/slog"

	"github.com/kyuff/projections/internal/logger"
)

type Option func(*Config)

func WithLogger(logger Logger) Option {
	return func(opt *Config) {
		opt.logger = logger
	}
}

func WithNoopLogger() Option {
	return WithLogger(logger.Noop{})
}

func WithDefaultSlog() Option {
	return WithSlog(slog.Default())
}

func WithSlog(log *slog.Logger) Option {
	return WithLogger(
		logger.NewSlog(log),
	)
}

// WithConcurrency bounds the number of entities GetMany materializes at
// the same time.
func WithConcurrency(limit int) Option {
	return func(opt *Config) {
		if limit > 0 {
			opt.concurrency = limit
		}
	}
}

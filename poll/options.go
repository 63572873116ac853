package poll

import "time"

type Config[S any] struct {
	backoff func(state S, retries int) time.Duration
	checker func(state S) bool
}

func defaultOptions[S any]() *Config[S] {
	return applyOptions(&Config[S]{},
		WithLinearBackoff[S](time.Millisecond*100),
		WithChecker(func(state S) bool {
			return true
		}),
	)
}

func applyOptions[S any](opts *Config[S], options ...Option[S]) *Config[S] {
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type Option[S any] func(*Config[S])

// WithBackoff allows you to provide a custom backoff function that determines
// the wait time between retries based on the current state and the number of retries.
func WithBackoff[S any](backoff func(S, int) time.Duration) Option[S] {
	return func(o *Config[S]) {
		o.backoff = backoff
	}
}

// WithFixedBackoff waits a fixed amount of time between retries.
func WithFixedBackoff[S any](d time.Duration) Option[S] {
	return WithBackoff[S](func(_ S, _ int) time.Duration {
		return d
	})
}

// WithLinearBackoff increases the wait time linearly with each retry.
func WithLinearBackoff[S any](increment time.Duration) Option[S] {
	return WithBackoff[S](func(_ S, retries int) time.Duration {
		return increment * time.Duration(retries)
	})
}

// WithExponentialBackoff doubles the wait time with each retry.
func WithExponentialBackoff[S any](base time.Duration) Option[S] {
	return WithBackoff[S](func(_ S, retries int) time.Duration {
		return base * time.Duration(1<<retries)
	})
}

// WithChecker allows you to provide a custom checker function that determines
// whether the materialized state is complete or should be polled again.
func WithChecker[S any](checker func(state S) bool) Option[S] {
	return func(config *Config[S]) {
		config.checker = checker
	}
}

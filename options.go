package vector

import "go.uber.org/zap"

// Option configures a Vector at construction.
type Option func(*config)

type config struct {
	capacity int
	logger   *zap.Logger
}

// WithCapacity reserves room for n elements up front. Values <= 0 reserve
// nothing.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger sets the logger used by one vector instead of the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity < 0 {
		c.capacity = 0
	}
	return c
}

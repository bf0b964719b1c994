package ktree

import (
	"github.com/hashicorp/go-hclog"
)

type config struct {
	arity  int
	logger hclog.Logger
}

// Option configures a [Tree] created by [New].
type Option func(*config)

// WithArity sets the maximum number of children of each node.
// New will panic if arity is less than 1.
func WithArity(arity int) Option {
	return func(c *config) {
		c.arity = arity
	}
}

// WithLogger sets the logger used to trace insertions.
// A nil logger discards everything, which is also the default.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{arity: DefaultArity}
	for _, opt := range opts {
		opt(&c)
	}
	if c.arity < 1 {
		panic("arity must be positive")
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	return c
}

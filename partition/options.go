package partition

import "go.uber.org/zap"

// DefaultMemoThreshold is the smallest m whose subproblems are memoized.
const DefaultMemoThreshold int32 = 50

// Option configures a Counter.
type Option func(*Counter)

// WithMemoThreshold sets the smallest m worth memoizing. Subproblems below it
// are always recomputed. math.MaxInt32 turns memoization off.
func WithMemoThreshold(threshold int32) Option {
	return func(c *Counter) {
		c.memoThreshold = threshold
	}
}

// WithLogger sets the logger used for per-query debug records.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

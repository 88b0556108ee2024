package demo

import "github.com/Iron-Ham/recount/internal/logging"

// builderConfig holds optional configuration for Build.
type builderConfig struct {
	logger   *logging.Logger
	capacity int
	logDrops bool
}

// Option configures Build.
type Option func(*builderConfig)

// WithLogger sets the logger click handlers write to.
// If unset, log output is discarded.
func WithLogger(l *logging.Logger) Option {
	return func(c *builderConfig) { c.logger = l }
}

// WithCapacity sets the message channel capacity for the channel
// approach. Values below 1 are raised to 1. Other approaches have no
// channel and ignore it.
func WithCapacity(n int) Option {
	return func(c *builderConfig) { c.capacity = n }
}

// WithLogDrops enables a debug log entry for every click dropped by a
// full channel.
func WithLogDrops(enabled bool) Option {
	return func(c *builderConfig) { c.logDrops = enabled }
}

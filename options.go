package spatialjoin

import (
	"log/slog"

	"github.com/hupe1980/spatialjoin/dedup"
)

type options struct {
	logger  *Logger
	metrics MetricsCollector
	oracle  dedup.Oracle
}

// Option configures ambient Joiner behavior (logging, metrics, dedup).
// The join semantics themselves are fixed by the positional New parameters.
type Option func(*options)

// WithLogger configures structured logging for join operations.
// Pass nil to keep the default noop logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring join
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithDedupOracle enables cross-partition duplicate suppression: every
// predicate-passing pair is kept only when the oracle reports this
// partition as its canonical owner.
func WithDedupOracle(oracle dedup.Oracle) Option {
	return func(o *options) {
		o.oracle = oracle
	}
}

// WithDedupParams is a convenience wrapper for
// WithDedupOracle(params.OracleFor(partitionID)).
func WithDedupParams(params *dedup.Params, partitionID int) Option {
	return func(o *options) {
		o.oracle = params.OracleFor(partitionID)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

package bitvector

import "log/slog"

const defaultBlockSize = 64

type options struct {
	blockSize        uint32
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a BitVector constructor.
//
// Today options primarily exist to avoid exploding the constructor
// surface (e.g. block-size-specific constructor variants).
type Option func(*options)

// WithBlockSize configures the leaf capacity S. It must be even and at
// least 4; invalid values fall back to the default of 64.
func WithBlockSize(s uint32) Option {
	return func(o *options) {
		if s < 4 || s%2 != 0 {
			return
		}
		o.blockSize = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// split/merge/steal/rotation activity. Pass nil to disable it.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitvector.BasicMetricsCollector{}
//	bv := bitvector.New(bitvector.WithMetricsCollector(metrics))
//	// ... use bv ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for rebalancing events and
// rejected operations. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets
// it. Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		blockSize:        defaultBlockSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

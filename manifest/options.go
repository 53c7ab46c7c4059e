package manifest

import "github.com/hupe1980/vertexid"

// DefaultLoadConcurrency bounds the parallel reads of LoadAll.
const DefaultLoadConcurrency = 8

type options struct {
	logger          *vertexid.Logger
	metrics         MetricsCollector
	prefix          string
	loadConcurrency int
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *vertexid.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vertexid.NoopLogger()
		}
		o.logger = l
	}
}

// WithPrefix places all manifests below prefix (e.g. "graphs/").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLoadConcurrency bounds the number of concurrent reads in LoadAll.
// Values below 1 select DefaultLoadConcurrency.
func WithLoadConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultLoadConcurrency
		}
		o.loadConcurrency = n
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

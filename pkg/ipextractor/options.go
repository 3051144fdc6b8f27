package ipextractor

import (
	"time"

	"github.com/bft-labs/ipextractor/internal/ports"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// Metrics records extraction outcomes. See internal/adapters/metrics for a
// Prometheus implementation.
type Metrics = ports.Metrics

// Option configures optional behavior of an Extractor.
type Option func(*options)

// options holds the optional configuration for an Extractor.
type options struct {
	csv       bool
	json      bool
	outputDir string
	workers   int
	debounce  time.Duration
	logger    log.Logger
	metrics   Metrics
}

func defaultOptions() options {
	return options{
		workers:  1,
		debounce: 500 * time.Millisecond,
		logger:   log.NewNoopLogger(),
		metrics:  ports.NoopMetrics{},
	}
}

// WithCSV enables the <name>_ips.csv output.
func WithCSV(enabled bool) Option {
	return func(o *options) {
		o.csv = enabled
	}
}

// WithJSON enables the <name>_ips.json output.
func WithJSON(enabled bool) Option {
	return func(o *options) {
		o.json = enabled
	}
}

// WithOutputDir writes output files to dir instead of next to the source.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outputDir = dir
	}
}

// WithWorkers scans up to n pages concurrently. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithDebounce sets how long Watch waits after the last write to a file.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics installs a Metrics implementation.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

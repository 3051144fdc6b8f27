// Package metrics provides a Prometheus-backed implementation of
// ports.Metrics.
package metrics

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics records extraction counters on a Prometheus registry.
type PrometheusMetrics struct {
	documents  *prom.CounterVec
	candidates prom.Counter
	verdicts   *prom.CounterVec
	outputs    *prom.CounterVec
	gatherer   prom.Gatherer
}

// New creates PrometheusMetrics on a fresh registry.
func New() (*PrometheusMetrics, error) {
	reg := prom.NewRegistry()
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on registerer. gatherer is used
// by WriteTextfile and may be nil when textfile export is not needed.
// Collectors that are already registered are reused.
func NewWithRegistry(registerer prom.Registerer, gatherer prom.Gatherer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	documents, err := registerCounterVec(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ipextractor_documents_total",
			Help: "Documents processed, labeled by result (found, not_found, error).",
		},
		[]string{"result"},
	), "ipextractor_documents_total")
	if err != nil {
		return nil, err
	}

	candidates, err := registerCounter(registerer, prom.NewCounter(
		prom.CounterOpts{
			Name: "ipextractor_candidates_total",
			Help: "Dotted-quad substrings matched in document text.",
		},
	), "ipextractor_candidates_total")
	if err != nil {
		return nil, err
	}

	verdicts, err := registerCounterVec(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ipextractor_candidate_verdicts_total",
			Help: "Validated candidates labeled by verdict (accepted, invalid, private, reserved, ...).",
		},
		[]string{"verdict"},
	), "ipextractor_candidate_verdicts_total")
	if err != nil {
		return nil, err
	}

	outputs, err := registerCounterVec(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ipextractor_output_files_total",
			Help: "Output files written, labeled by format.",
		},
		[]string{"format"},
	), "ipextractor_output_files_total")
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		documents:  documents,
		candidates: candidates,
		verdicts:   verdicts,
		outputs:    outputs,
		gatherer:   gatherer,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

func registerCounter(registerer prom.Registerer, collector prom.Counter, metricName string) (prom.Counter, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(prom.Counter)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordDocument increments ipextractor_documents_total for result.
func (m *PrometheusMetrics) RecordDocument(result string) {
	m.documents.WithLabelValues(result).Inc()
}

// RecordCandidates adds n to ipextractor_candidates_total.
func (m *PrometheusMetrics) RecordCandidates(n int) {
	if n > 0 {
		m.candidates.Add(float64(n))
	}
}

// RecordVerdict adds n to ipextractor_candidate_verdicts_total for verdict.
func (m *PrometheusMetrics) RecordVerdict(verdict string, n int) {
	if n > 0 {
		m.verdicts.WithLabelValues(verdict).Add(float64(n))
	}
}

// RecordOutput increments ipextractor_output_files_total for format.
func (m *PrometheusMetrics) RecordOutput(format string) {
	m.outputs.WithLabelValues(format).Inc()
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format, for pickup by the node_exporter textfile collector.
func (m *PrometheusMetrics) WriteTextfile(path string) error {
	if m.gatherer == nil {
		return errors.New("metrics: no gatherer configured")
	}
	return prom.WriteToTextfile(path, m.gatherer)
}

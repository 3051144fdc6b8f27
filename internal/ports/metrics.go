package ports

// Metrics records extraction outcomes.
//
// Implementations should be safe for concurrent use.
type Metrics interface {
	// RecordDocument is called once per processed document with its result
	// ("found", "not_found" or "error").
	RecordDocument(result string)
	// RecordCandidates adds n dotted-quad matches.
	RecordCandidates(n int)
	// RecordVerdict adds n candidates with the given validation verdict.
	RecordVerdict(verdict string, n int)
	// RecordOutput is called for each output file written, by format.
	RecordOutput(format string)
}

// NoopMetrics discards all measurements.
type NoopMetrics struct{}

func (NoopMetrics) RecordDocument(string)     {}
func (NoopMetrics) RecordCandidates(int)      {}
func (NoopMetrics) RecordVerdict(string, int) {}
func (NoopMetrics) RecordOutput(string)       {}

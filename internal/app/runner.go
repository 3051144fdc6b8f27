// Package app drives documents through the extraction pipeline and writes
// the results.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/ipextractor/internal/emit"
	"github.com/bft-labs/ipextractor/internal/extract"
	"github.com/bft-labs/ipextractor/internal/ports"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// Document results recorded in metrics.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RunnerConfig contains the per-run output options.
type RunnerConfig struct {
	CSV     bool
	JSON    bool
	Workers int
}

// Report describes the outcome of one document run.
type Report struct {
	RunID     string
	Source    string
	Blocks    int
	Addresses []string
	Files     []string
	Stats     extract.Stats
	Duration  time.Duration
}

// Found reports whether at least one public address was extracted.
// When false, no output files were written.
func (r Report) Found() bool {
	return len(r.Addresses) > 0
}

// Count returns the number of unique addresses.
func (r Report) Count() int {
	return len(r.Addresses)
}

// Runner processes one document at a time.
type Runner struct {
	config   RunnerConfig
	source   ports.TextSource
	writer   ports.OutputWriter
	metrics  ports.Metrics
	logger   log.Logger
	pipeline *extract.Pipeline
}

// NewRunner creates a Runner with the given dependencies. Nil metrics or
// logger are replaced with no-op implementations.
func NewRunner(
	config RunnerConfig,
	source ports.TextSource,
	writer ports.OutputWriter,
	metrics ports.Metrics,
	logger log.Logger,
) *Runner {
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		config:   config,
		source:   source,
		writer:   writer,
		metrics:  metrics,
		logger:   logger,
		pipeline: extract.NewPipeline(config.Workers),
	}
}

// Run extracts the public IPv4 addresses of the document at path and writes
// the plain text output plus any requested CSV and JSON files.
//
// A document without addresses is not an error: the returned Report has
// Found() == false and nothing is written. Source and write failures are
// returned as errors; files written before a write failure are kept.
func (r *Runner) Run(ctx context.Context, path string) (Report, error) {
	start := time.Now()
	report := Report{RunID: uuid.New().String(), Source: path}

	r.logger.Info("processing", log.String("run_id", report.RunID), log.String("source", path))

	blocks, err := r.source.Blocks(ctx, path)
	if err != nil {
		r.metrics.RecordDocument(ResultError)
		return report, err
	}
	report.Blocks = len(blocks)

	addrs, stats, err := r.pipeline.Run(ctx, blocks)
	report.Stats = stats
	r.recordStats(stats)
	if err != nil {
		r.metrics.RecordDocument(ResultError)
		return report, err
	}
	report.Addresses = addrs

	r.logger.Debug("scanned",
		log.String("run_id", report.RunID),
		log.Int("blocks", stats.Blocks),
		log.Int("candidates", stats.Candidates),
		log.Int("accepted", stats.Accepted),
	)

	if !report.Found() {
		r.metrics.RecordDocument(ResultNotFound)
		report.Duration = time.Since(start)
		r.logger.Warn("no public IP addresses found", log.String("run_id", report.RunID), log.String("source", path))
		if stale := r.staleOutputs(path); len(stale) > 0 {
			r.logger.Warn("output files from a previous run no longer match the document",
				log.String("run_id", report.RunID),
				log.Strings("files", stale),
			)
		}
		return report, nil
	}

	for _, e := range emit.Selected(r.config.CSV, r.config.JSON) {
		data, err := e.Encode(addrs)
		if err != nil {
			r.metrics.RecordDocument(ResultError)
			return report, fmt.Errorf("encode %s: %w", e.Format(), err)
		}

		out := r.writer.Path(path, e.Format().Extension())
		if err := r.writer.Write(out, data); err != nil {
			r.metrics.RecordDocument(ResultError)
			return report, err
		}

		report.Files = append(report.Files, out)
		r.metrics.RecordOutput(string(e.Format()))
		r.logger.Info("saved", log.String("run_id", report.RunID), log.String("file", out))
	}

	r.metrics.RecordDocument(ResultFound)
	report.Duration = time.Since(start)
	r.logger.Info("found unique public IP addresses",
		log.String("run_id", report.RunID),
		log.Int("count", report.Count()),
		log.Strings("files", report.Files),
		log.Duration("took", report.Duration),
	)

	return report, nil
}

// staleOutputs lists existing output files for path in any format.
func (r *Runner) staleOutputs(path string) []string {
	var stale []string
	for _, e := range emit.Selected(true, true) {
		out := r.writer.Path(path, e.Format().Extension())
		if _, err := os.Stat(out); err == nil {
			stale = append(stale, out)
		}
	}
	return stale
}

func (r *Runner) recordStats(stats extract.Stats) {
	r.metrics.RecordCandidates(stats.Candidates)
	r.metrics.RecordVerdict(string(extract.VerdictAccepted), stats.Accepted)
	for v, n := range stats.Rejected {
		r.metrics.RecordVerdict(string(v), n)
	}
}

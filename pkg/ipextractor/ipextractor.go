package ipextractor

import (
	"context"
	"path/filepath"

	"github.com/bft-labs/ipextractor/internal/adapters/fs"
	"github.com/bft-labs/ipextractor/internal/adapters/pdf"
	"github.com/bft-labs/ipextractor/internal/app"
	"github.com/bft-labs/ipextractor/internal/domain"
	"github.com/bft-labs/ipextractor/internal/extract"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// Report describes the outcome of one document run.
type Report = app.Report

// Errors returned by ExtractFile. Check with errors.Is.
var (
	ErrInputNotFound = domain.ErrInputNotFound
	ErrWrongFormat   = domain.ErrWrongFormat
	ErrOutputWrite   = domain.ErrOutputWrite
)

// Extractor extracts public IPv4 addresses from documents.
// An Extractor is safe to reuse across documents.
type Extractor struct {
	opts   options
	runner *app.Runner
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runner := app.NewRunner(
		app.RunnerConfig{CSV: o.csv, JSON: o.json, Workers: o.workers},
		pdf.NewSource(o.logger),
		fs.NewOutputFileWriter(o.outputDir),
		o.metrics,
		o.logger,
	)

	return &Extractor{opts: o, runner: runner}
}

// Addresses returns the unique public addresses found in blocks, in
// canonical order. Nothing is written.
func (e *Extractor) Addresses(ctx context.Context, blocks ...string) ([]string, error) {
	addrs, _, err := extract.NewPipeline(e.opts.workers).Run(ctx, blocks)
	return addrs, err
}

// ExtractFile processes the PDF at path and writes the enabled outputs.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (Report, error) {
	return e.runner.Run(ctx, path)
}

// Watch processes every PDF in dir, then each PDF created or modified until
// ctx is canceled. Processed digests are kept in stateFile, or in a hidden
// file inside dir when stateFile is empty.
func (e *Extractor) Watch(ctx context.Context, dir, stateFile string) error {
	if stateFile == "" {
		stateFile = filepath.Join(dir, fs.DefaultStateFileName)
	}

	repo := fs.NewStateFileRepository(stateFile)
	e.opts.logger.Debug("watch state", log.String("path", repo.Path()))

	w := app.NewWatcher(
		app.WatcherConfig{Dir: dir, Debounce: e.opts.debounce},
		e.runner,
		repo,
		e.opts.logger,
	)
	return w.Run(ctx)
}

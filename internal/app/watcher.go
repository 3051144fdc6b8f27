package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/ipextractor/internal/domain"
	"github.com/bft-labs/ipextractor/internal/ports"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// DocumentRunner processes a single document. *Runner satisfies it.
type DocumentRunner interface {
	Run(ctx context.Context, path string) (Report, error)
}

// WatcherConfig contains configuration for the directory watcher.
type WatcherConfig struct {
	// Dir is the directory to watch for PDF files.
	Dir string

	// Debounce is the delay after the last write to a file before it is
	// processed. Default: 500 milliseconds
	Debounce time.Duration

	// MaxAttempts bounds retries for a document that fails to process.
	// Default: 3
	MaxAttempts int

	// RetryInitial and RetryMax bound the retry backoff.
	RetryInitial time.Duration
	RetryMax     time.Duration
}

// Watcher runs documents dropped into a directory through a DocumentRunner.
// Documents are processed one at a time; a document whose digest matches the
// persisted state is skipped.
type Watcher struct {
	config    WatcherConfig
	runner    DocumentRunner
	stateRepo ports.StateRepository
	logger    log.Logger

	state domain.WatchState
	retry *backoff

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewWatcher creates a Watcher with the given dependencies.
func NewWatcher(config WatcherConfig, runner DocumentRunner, stateRepo ports.StateRepository, logger log.Logger) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = 500 * time.Millisecond
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.RetryInitial <= 0 {
		config.RetryInitial = DefaultBackoffInitial
	}
	if config.RetryMax <= 0 {
		config.RetryMax = DefaultBackoffMax
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		config:    config,
		runner:    runner,
		stateRepo: stateRepo,
		logger:    logger,
		retry:     newBackoff(config.RetryInitial, config.RetryMax),
		timers:    make(map[string]*time.Timer),
	}
}

// Run processes the PDFs already present in the directory, then every PDF
// created or written afterwards. It blocks until ctx is canceled and then
// returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	state, err := w.stateRepo.Load(ctx)
	if err != nil {
		w.logger.Error("failed to load watch state", log.Err(err))
		// Continue with empty state
	}
	w.state = state
	if state.IsEmpty() {
		w.logger.Debug("no documents processed yet")
	} else {
		w.logger.Debug("loaded watch state", log.Int("documents", len(state.Documents)))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.config.Dir, err)
	}
	w.logger.Info("watching", log.String("dir", w.config.Dir))

	existing, err := existingPDFs(w.config.Dir)
	if err != nil {
		return err
	}
	for _, path := range existing {
		w.process(ctx, path)
	}

	pending := make(chan string, 64)
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPDF(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounce(ctx, event.Name, pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))

		case path := <-pending:
			w.process(ctx, path)
		}
	}
}

func (w *Watcher) debounce(ctx context.Context, path string, pending chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case pending <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

// process runs one document, retrying transient failures with backoff.
func (w *Watcher) process(ctx context.Context, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	digest, err := Digest(abs)
	if err != nil {
		w.logger.Warn("skipping unreadable document", log.String("source", abs), log.Err(err))
		return
	}
	if w.state.Unchanged(abs, digest) {
		w.logger.Debug("document unchanged, skipping", log.String("source", abs))
		return
	}

	w.retry.Reset()
	for attempt := 1; ; attempt++ {
		report, err := w.runner.Run(ctx, abs)
		if err == nil {
			w.record(ctx, abs, digest, report.Count())
			return
		}

		if !retryable(err) || attempt >= w.config.MaxAttempts {
			w.logger.Error("document failed", log.String("source", abs), log.Int("attempts", attempt), log.Err(err))
			return
		}

		w.logger.Warn("document failed, retrying", log.String("source", abs), log.Duration("backoff", w.retry.Current()), log.Err(err))
		if err := w.retry.Wait(ctx); err != nil {
			return
		}
	}
}

func (w *Watcher) record(ctx context.Context, path, digest string, count int) {
	w.state.Record(path, digest, count)
	if err := w.stateRepo.Save(ctx, w.state); err != nil {
		w.logger.Error("failed to save watch state", log.Err(err))
	}
}

// retryable reports whether a run failure may succeed later, e.g. because
// the document was still being copied.
func retryable(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, domain.ErrWrongFormat), errors.Is(err, domain.ErrInputNotFound):
		return false
	}
	return true
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

func existingPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() && isPDF(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bft-labs/ipextractor/internal/domain"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// staticSource implements ports.TextSource with fixed blocks.
type staticSource struct {
	blocks []string
	err    error
}

func (s staticSource) Blocks(ctx context.Context, path string) ([]string, error) {
	return s.blocks, s.err
}

// mockMetrics counts recorded events.
type mockMetrics struct {
	mu         sync.Mutex
	documents  map[string]int
	candidates int
	verdicts   map[string]int
	outputs    map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		documents: make(map[string]int),
		verdicts:  make(map[string]int),
		outputs:   make(map[string]int),
	}
}

func (m *mockMetrics) RecordDocument(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[result]++
}

func (m *mockMetrics) RecordCandidates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates += n
}

func (m *mockMetrics) RecordVerdict(verdict string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verdicts[verdict] += n
}

func (m *mockMetrics) RecordOutput(format string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[format]++
}

// recordingLogger keeps every message with its level and fields.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields []log.Field
}

func (l *recordingLogger) add(level, msg string, fields []log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields ...log.Field) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields ...log.Field)  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...log.Field)  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...log.Field) { l.add("error", msg, fields) }

// field returns the value of the first field named key logged at level.
func (l *recordingLogger) field(level, key string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level != level {
			continue
		}
		for _, f := range e.fields {
			if f.Key == key {
				return f.Value, true
			}
		}
	}
	return nil, false
}

// memoryStateRepo implements ports.StateRepository in memory.
type memoryStateRepo struct {
	mu    sync.Mutex
	state domain.WatchState
}

func (r *memoryStateRepo) Load(ctx context.Context) (domain.WatchState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s domain.WatchState
	for k, v := range r.state.Documents {
		if s.Documents == nil {
			s.Documents = make(map[string]domain.WatchEntry)
		}
		s.Documents[k] = v
	}
	return s, nil
}

func (r *memoryStateRepo) Save(ctx context.Context, state domain.WatchState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = domain.WatchState{Documents: make(map[string]domain.WatchEntry, len(state.Documents))}
	for k, v := range state.Documents {
		r.state.Documents[k] = v
	}
	return nil
}

// writeDoc creates a placeholder document so that digests can be computed.
func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

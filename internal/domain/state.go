package domain

import "time"

// WatchState records which documents the watcher has already processed.
// It is persisted between runs so that restarts skip unchanged documents.
type WatchState struct {
	// Documents maps an absolute document path to its last processed entry.
	Documents map[string]WatchEntry `json:"documents"`
}

// WatchEntry describes the last successful run for one document.
type WatchEntry struct {
	// Digest is the hex-encoded blake3 digest of the document bytes.
	Digest string `json:"digest"`

	// Addresses is the number of unique public addresses found.
	Addresses int `json:"addresses"`

	// ProcessedAt is the time the run completed.
	ProcessedAt time.Time `json:"processed_at"`
}

// IsEmpty returns true if no documents have been recorded.
func (s WatchState) IsEmpty() bool {
	return len(s.Documents) == 0
}

// Unchanged reports whether path was already processed with the same digest.
func (s WatchState) Unchanged(path, digest string) bool {
	e, ok := s.Documents[path]
	return ok && e.Digest == digest
}

// Record stores the outcome of a run for path.
func (s *WatchState) Record(path, digest string, addresses int) {
	if s.Documents == nil {
		s.Documents = make(map[string]WatchEntry)
	}
	s.Documents[path] = WatchEntry{
		Digest:      digest,
		Addresses:   addresses,
		ProcessedAt: time.Now(),
	}
}

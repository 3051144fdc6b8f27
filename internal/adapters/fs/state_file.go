package fs

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/ipextractor/internal/domain"
)

// DefaultStateFileName is the watcher state file created in the watched
// directory when no explicit path is configured.
const DefaultStateFileName = ".ipextractor-state.json"

// StateFileRepository implements ports.StateRepository using a JSON file.
type StateFileRepository struct {
	path string
}

// NewStateFileRepository creates a StateFileRepository backed by path.
func NewStateFileRepository(path string) *StateFileRepository {
	return &StateFileRepository{path: path}
}

// Load retrieves the last saved state from disk.
// Returns an empty state and nil error if no state file exists.
func (r *StateFileRepository) Load(ctx context.Context) (domain.WatchState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.WatchState{}, nil
		}
		return domain.WatchState{}, err
	}

	var state domain.WatchState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.WatchState{}, err
	}

	return state, nil
}

// Save persists the current state atomically.
func (r *StateFileRepository) Save(ctx context.Context, state domain.WatchState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(r.path, data, 0o600)
}

// Path returns the full path to the state file.
func (r *StateFileRepository) Path() string {
	return r.path
}

// writeAtomic writes data to a temp file next to path, then renames it
// over path.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

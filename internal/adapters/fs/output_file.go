// Package fs implements file system adapters: output files and watcher state.
package fs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bft-labs/ipextractor/internal/domain"
)

// OutputSuffix is appended to the source file stem to name output files.
const OutputSuffix = "_ips"

// OutputFileWriter implements ports.OutputWriter on the local file system.
type OutputFileWriter struct {
	dir string
}

// NewOutputFileWriter creates a writer. When dir is empty, output files are
// placed next to the source document.
func NewOutputFileWriter(dir string) *OutputFileWriter {
	return &OutputFileWriter{dir: dir}
}

// Path returns <dir>/<stem>_ips<ext> for source, e.g. report.pdf becomes
// report_ips.txt.
func (w *OutputFileWriter) Path(source, ext string) string {
	return OutputPath(source, w.dir, ext)
}

// Write stores data at path atomically.
func (w *OutputFileWriter) Write(path string, data []byte) error {
	if err := writeAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputWrite, path, err)
	}
	return nil
}

// OutputPath derives an output file path from source. If dir is empty the
// source directory is used.
func OutputPath(source, dir, ext string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, stem+OutputSuffix+ext)
}

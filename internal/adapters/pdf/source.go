// Package pdf reads per-page text from PDF documents using tabula.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/format"
	"github.com/tsawler/tabula/reader"

	"github.com/bft-labs/ipextractor/internal/domain"
	"github.com/bft-labs/ipextractor/pkg/log"
)

// Source implements ports.TextSource for PDF files.
type Source struct {
	logger log.Logger
}

// NewSource creates a PDF Source. A nil logger discards messages.
func NewSource(logger log.Logger) *Source {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Source{logger: logger}
}

// Blocks returns the text of each non-empty page of the PDF at path.
func (s *Source) Blocks(ctx context.Context, path string) ([]string, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}

	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("page count %s: %w", path, err)
	}

	blocks := make([]string, 0, count)
	for page := 1; page <= count; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.logger.Debug("reading page", log.String("source", path), log.Int("page", page), log.Int("pages", count))

		text, warnings, err := tabula.FromReader(r).Pages(page).Text()
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", page, path, err)
		}
		if len(warnings) > 0 {
			s.logger.Debug("pdf page warnings", log.Int("page", page), log.Int("warnings", len(warnings)))
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		blocks = append(blocks, text)
	}

	return blocks, nil
}

// CheckPath verifies that path names an existing regular file with a .pdf
// extension.
func CheckPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() || format.Detect(path) != format.PDF {
		return fmt.Errorf("%w: %s is not a PDF file", domain.ErrWrongFormat, path)
	}
	return nil
}

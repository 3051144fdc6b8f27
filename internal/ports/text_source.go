package ports

import "context"

// TextSource extracts text from a document.
type TextSource interface {
	// Blocks returns the document text, one block per page or unit, in
	// document order. Pages without text are omitted.
	// Returns an error wrapping domain.ErrInputNotFound or
	// domain.ErrWrongFormat when the document cannot be used.
	Blocks(ctx context.Context, path string) ([]string, error)
}

package ports

// OutputWriter persists one encoded output file.
type OutputWriter interface {
	// Path returns the destination for the given source document and
	// extension (including the leading dot).
	Path(source, ext string) string

	// Write stores data at path, replacing any existing file.
	// Returns an error wrapping domain.ErrOutputWrite on failure.
	Write(path string, data []byte) error
}

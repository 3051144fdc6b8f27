// Package emit serializes an ordered address list into output formats.
package emit

// Format identifies an output format. Its value doubles as the file extension.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Extension returns the file extension for f, including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Emitter encodes an ordered address list. Emitters are stateless and the
// input is expected to be already sorted.
type Emitter interface {
	Format() Format
	Encode(addrs []string) ([]byte, error)
}

// Selected returns the plain emitter followed by CSV and JSON when requested.
func Selected(csv, json bool) []Emitter {
	out := []Emitter{Plain{}}
	if csv {
		out = append(out, CSV{})
	}
	if json {
		out = append(out, JSON{})
	}
	return out
}

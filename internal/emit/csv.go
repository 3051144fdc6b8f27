package emit

import (
	"bytes"
	"encoding/csv"
)

// CSVHeader is the single column header of the CSV output.
const CSVHeader = "IPv4 Address"

// CSV writes a header row followed by one address per row.
// Rows end with CRLF as described in RFC 4180.
type CSV struct{}

// Format returns FormatCSV.
func (CSV) Format() Format { return FormatCSV }

// Encode renders addrs as CSV.
func (CSV) Encode(addrs []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write([]string{CSVHeader}); err != nil {
		return nil, err
	}
	for _, a := range addrs {
		if err := w.Write([]string{a}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

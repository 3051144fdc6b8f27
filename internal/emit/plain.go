package emit

import "strings"

// Plain writes one address per line with no header or trailing newline.
type Plain struct{}

// Format returns FormatText.
func (Plain) Format() Format { return FormatText }

// Encode joins addrs with newlines.
func (Plain) Encode(addrs []string) ([]byte, error) {
	return []byte(strings.Join(addrs, "\n")), nil
}

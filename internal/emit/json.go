package emit

import "encoding/json"

// Document is the JSON output shape.
type Document struct {
	IPs []string `json:"ips"`
}

// JSON writes {"ips": [...]} indented with four spaces.
type JSON struct{}

// Format returns FormatJSON.
func (JSON) Format() Format { return FormatJSON }

// Encode renders addrs as an indented JSON document.
func (JSON) Encode(addrs []string) ([]byte, error) {
	if addrs == nil {
		addrs = []string{}
	}
	return json.MarshalIndent(Document{IPs: addrs}, "", "    ")
}

// DecodeJSON parses output produced by JSON.Encode.
func DecodeJSON(data []byte) ([]string, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.IPs, nil
}

package emit

import (
	"reflect"
	"testing"
)

var ordered = []string{"1.1.1.1", "8.8.8.8", "10.0.0.10"}

func TestPlain_Encode(t *testing.T) {
	got, err := Plain{}.Encode(ordered)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "1.1.1.1\n8.8.8.8\n10.0.0.10"
	if string(got) != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestCSV_Encode(t *testing.T) {
	got, err := CSV{}.Encode(ordered)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "IPv4 Address\r\n1.1.1.1\r\n8.8.8.8\r\n10.0.0.10\r\n"
	if string(got) != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestJSON_Encode(t *testing.T) {
	got, err := JSON{}.Encode([]string{"1.1.1.1", "8.8.8.8"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "{\n    \"ips\": [\n        \"1.1.1.1\",\n        \"8.8.8.8\"\n    ]\n}"
	if string(got) != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	data, err := JSON{}.Encode(ordered)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, ordered) {
		t.Errorf("round trip = %v, want %v", got, ordered)
	}
}

func TestSelected(t *testing.T) {
	tests := []struct {
		name      string
		csv, json bool
		want      []Format
	}{
		{name: "plain only", want: []Format{FormatText}},
		{name: "csv", csv: true, want: []Format{FormatText, FormatCSV}},
		{name: "json", json: true, want: []Format{FormatText, FormatJSON}},
		{name: "all", csv: true, json: true, want: []Format{FormatText, FormatCSV, FormatJSON}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Format
			for _, e := range Selected(tt.csv, tt.json) {
				got = append(got, e.Format())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_Extension(t *testing.T) {
	if got := FormatJSON.Extension(); got != ".json" {
		t.Errorf("Extension() = %q, want .json", got)
	}
}

package domain

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Address
		wantOK bool
	}{
		{name: "public", input: "8.8.8.8", want: Address{8, 8, 8, 8}, wantOK: true},
		{name: "all ones", input: "255.255.255.255", want: Address{255, 255, 255, 255}, wantOK: true},
		{name: "octet too large", input: "256.1.1.1"},
		{name: "three parts", input: "1.2.3"},
		{name: "five parts", input: "1.2.3.4.5"},
		{name: "empty part", input: "1..3.4"},
		{name: "letters", input: "1.a.3.4"},
		{name: "negative", input: "1.-2.3.4"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAddress(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAddress(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAddress(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddress_Compare(t *testing.T) {
	nine := Address{10, 0, 0, 9}
	ten := Address{10, 0, 0, 10}
	google := Address{8, 8, 8, 8}

	if nine.Compare(ten) != -1 {
		t.Errorf("10.0.0.9 should sort before 10.0.0.10")
	}
	if ten.Compare(google) != 1 {
		t.Errorf("10.0.0.10 should sort after 8.8.8.8")
	}
	if ten.Compare(ten) != 0 {
		t.Errorf("Compare with itself should be 0")
	}
	if got := google.Uint32(); got != 0x08080808 {
		t.Errorf("Uint32() = %#x, want 0x08080808", got)
	}
}

func TestWatchState(t *testing.T) {
	var s WatchState
	if !s.IsEmpty() {
		t.Fatal("zero WatchState should be empty")
	}
	if s.Unchanged("/docs/a.pdf", "abc") {
		t.Error("Unchanged on empty state should be false")
	}

	s.Record("/docs/a.pdf", "abc", 3)
	if !s.Unchanged("/docs/a.pdf", "abc") {
		t.Error("Unchanged should be true after Record with same digest")
	}
	if s.Unchanged("/docs/a.pdf", "def") {
		t.Error("Unchanged should be false for a new digest")
	}
	if got := s.Documents["/docs/a.pdf"].Addresses; got != 3 {
		t.Errorf("Addresses = %d, want 3", got)
	}
}

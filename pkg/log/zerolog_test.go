package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("extracted",
		String("source", "report.pdf"),
		Int("count", 2),
		Strings("files", []string{"a.txt", "a.csv"}),
		Err(errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"message":"extracted"`,
		`"source":"report.pdf"`,
		`"count":2`,
		`"files":["a.txt","a.csv"]`,
		`"error":"boom"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestNewConsole_Level(t *testing.T) {
	var buf bytes.Buffer
	zl, err := NewConsole(&buf, "warn")
	if err != nil {
		t.Fatalf("NewConsole() error = %v", err)
	}
	z := NewZerologAdapterWithLogger(zl)

	z.Info("hidden")
	z.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestNewConsole_InvalidLevel(t *testing.T) {
	if _, err := NewConsole(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("NewConsole(loud) should fail")
	}
}

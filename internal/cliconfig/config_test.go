package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/ipextractor/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %v, want 1", cfg.Workers)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", cfg.Debounce)
	}
	if cfg.CSV || cfg.JSON {
		t.Errorf("CSV/JSON should default to false")
	}
}

func TestConfig_ValidateExtract(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid minimal config",
			config: Config{Extract: "report.pdf", Workers: 1, Debounce: time.Second},
		},
		{
			name:    "missing extract path",
			config:  Config{Workers: 1, Debounce: time.Second},
			wantErr: true,
		},
		{
			name:    "zero workers",
			config:  Config{Extract: "report.pdf", Debounce: time.Second},
			wantErr: true,
		},
		{
			name:    "negative debounce",
			config:  Config{Extract: "report.pdf", Workers: 2, Debounce: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateExtract()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateExtract() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("ValidateExtract() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_ValidateSetsLogLevel(t *testing.T) {
	cfg := Config{Workers: 1, Debounce: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				CSV:         &trueVal,
				JSON:        &trueVal,
				OutputDir:   "/out",
				Workers:     4,
				MetricsFile: "/var/lib/node_exporter/ipextractor.prom",
				LogLevel:    "debug",
				StateFile:   "/state.json",
				Debounce:    "2s",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				CSV:         true,
				JSON:        true,
				OutputDir:   "/out",
				Workers:     4,
				MetricsFile: "/var/lib/node_exporter/ipextractor.prom",
				LogLevel:    "debug",
				StateFile:   "/state.json",
				Debounce:    2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				OutputDir: "/config/out",
				CSV:       &falseVal,
				Workers:   8,
			},
			changed: map[string]bool{"output-dir": true, "csv": true},
			initial: Config{OutputDir: "/flag/out", CSV: true, Workers: 1},
			expected: Config{
				OutputDir: "/flag/out", // unchanged because flag was set
				CSV:       true,
				Workers:   8,
			},
		},
		{
			name:       "zero values leave defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Debounce: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
csv = true
output_dir = "/tmp/out"
workers = 3
debounce = "1s"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.CSV == nil || !*fc.CSV {
		t.Errorf("CSV = %v, want true", fc.CSV)
	}
	if fc.JSON != nil {
		t.Errorf("JSON = %v, want nil", fc.JSON)
	}
	if fc.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %v, want /tmp/out", fc.OutputDir)
	}
	if fc.Workers != 3 {
		t.Errorf("Workers = %v, want 3", fc.Workers)
	}
	if fc.Debounce != "1s" {
		t.Errorf("Debounce = %v, want 1s", fc.Debounce)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
csv = true
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".ipextractor") {
		t.Errorf("DefaultConfigPath() = %v, should contain .ipextractor", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}

package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	CSV         *bool  `toml:"csv"`
	JSON        *bool  `toml:"json"`
	OutputDir   string `toml:"output_dir"`
	Workers     int    `toml:"workers"`
	MetricsFile string `toml:"metrics_file"`
	LogLevel    string `toml:"log_level"`
	StateFile   string `toml:"state_file"`
	Debounce    string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.ipextractor/config.toml, or "" if the user
// home directory is not accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ipextractor", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBool("csv", fc.CSV, &cfg.CSV)
	s.setBool("json", fc.JSON, &cfg.JSON)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setString("metrics-file", fc.MetricsFile, &cfg.MetricsFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("state-file", fc.StateFile, &cfg.StateFile)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

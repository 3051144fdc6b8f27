package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (IPEXTRACTOR_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBoolFromString("csv", os.Getenv("IPEXTRACTOR_CSV"), &cfg.CSV)
	s.setBoolFromString("json", os.Getenv("IPEXTRACTOR_JSON"), &cfg.JSON)
	s.setString("output-dir", os.Getenv("IPEXTRACTOR_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("metrics-file", os.Getenv("IPEXTRACTOR_METRICS_FILE"), &cfg.MetricsFile)
	s.setString("log-level", os.Getenv("IPEXTRACTOR_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("state-file", os.Getenv("IPEXTRACTOR_STATE_FILE"), &cfg.StateFile)

	if err := s.setIntFromString("workers", os.Getenv("IPEXTRACTOR_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("IPEXTRACTOR_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	return nil
}

// Load applies the config file at path (when it exists) and then the
// environment, leaving explicitly set flags untouched.
// Precedence: flags > environment > file > defaults.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return err
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	return ApplyEnvConfig(cfg, changed)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Backend selection: "json" or "sqlite"
	Backend string

	// Ledger storage
	LedgerPath   string
	SQLiteDBPath string

	// Snapshots
	SnapshotDir string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		Backend: getEnv("PFR_BACKEND", "json"),

		LedgerPath:   getEnv("PFR_LEDGER_PATH", userPath(".pfr_data")),
		SQLiteDBPath: getEnv("PFR_DB_PATH", userPath(filepath.Join(".pfr", "pfr.db"))),

		SnapshotDir: getEnv("PFR_SNAPSHOT_DIR", userPath(filepath.Join(".pfr", "snapshots"))),

		LogLevel: getEnv("PFR_LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"json", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "json" && c.LedgerPath == "" {
		errors = append(errors, "ledger path cannot be empty when using json backend")
	}
	if c.Backend == "sqlite" && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.SnapshotDir == "" {
		errors = append(errors, "snapshot directory cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// DataPath returns the file the selected backend persists to.
func (c *Config) DataPath() string {
	if c.Backend == "sqlite" {
		return c.SQLiteDBPath
	}
	return c.LedgerPath
}

// userPath resolves a path relative to the user's home directory, falling
// back to the working directory when no home can be determined.
func userPath(rel string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return rel
	}
	return filepath.Join(home, rel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package backend

import (
	"context"
	"fmt"

	"pfr/internal/config"
	"pfr/internal/ledger"
)

// Type represents the kind of ledger store backing the application.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for store creation
type Config struct {
	Type Type

	// JSON specific
	LedgerPath string

	// SQLite specific
	SQLiteDBPath string
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the created store, the file backing it (used by the
// snapshot manager) and an optional cleanup function.
type Result struct {
	Store    ledger.Store
	DataPath string
	Cleanup  CleanupFunc
}

// Factory creates ledger stores based on configuration
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.Backend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.Backend)
	}

	return Config{
		Type:         backendType,
		LedgerPath:   appConfig.LedgerPath,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

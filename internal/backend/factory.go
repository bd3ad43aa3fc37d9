package backend

import (
	"context"
	"fmt"

	"pfr/internal/ledger/jsonfile"
	"pfr/internal/ledger/sqlitestore"
	"pfr/internal/log"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case JSONBackend:
		return f.createJSONStore(config)
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createJSONStore(config Config) (*Result, error) {
	store := jsonfile.New(config.LedgerPath)

	f.logger.Debug("Initialized JSON ledger backend", log.FieldPath, config.LedgerPath)

	return &Result{
		Store:    store,
		DataPath: store.Path(),
		Cleanup:  store.Close,
	}, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*Result, error) {
	store, err := sqlitestore.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Debug("Initialized SQLite ledger backend", log.FieldPath, config.SQLiteDBPath)

	return &Result{
		Store:    store,
		DataPath: store.Path(),
		Cleanup:  store.Close,
	}, nil
}

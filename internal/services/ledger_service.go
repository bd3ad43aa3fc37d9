// Package services provides the business operations behind the CLI
// commands, orchestrating the ledger store and the report engine.
package services

import (
	"context"
	"errors"
	"fmt"

	"pfr/internal/core"
	"pfr/internal/ledger"
	"pfr/internal/log"
	"pfr/internal/report"
)

// ErrDuplicateName is returned by Add when a transaction with the same
// name is already present in the ledger.
var ErrDuplicateName = errors.New("transaction name already taken")

// LedgerService orchestrates ledger operations against a store.
type LedgerService struct {
	store  ledger.Store
	logger *log.Logger
}

func NewLedgerService(store ledger.Store, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &LedgerService{
		store:  store,
		logger: logger.WithComponent(log.ComponentLedger),
	}
}

// Init writes an empty ledger, replacing any existing one.
func (s *LedgerService) Init(ctx context.Context) error {
	if err := s.store.Save(ctx, []core.Transaction{}); err != nil {
		return fmt.Errorf("initialize ledger: %w", err)
	}
	s.logger.InfoContext(ctx, "Ledger initialized", log.FieldOperation, log.OpInit)
	return nil
}

// Add validates and appends a transaction, rejecting duplicate names.
func (s *LedgerService) Add(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	txs, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	for _, existing := range txs {
		if existing.Name == tx.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateName, tx.Name)
		}
	}

	txs = append(txs, tx)
	if err := s.store.Save(ctx, txs); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	s.logger.InfoContext(ctx, "Transaction added",
		log.FieldOperation, log.OpAdd,
		log.FieldName, tx.Name,
		log.FieldKind, string(tx.Kind),
		log.FieldFrequency, string(tx.Frequency),
		log.FieldAmount, tx.Amount.String())
	return nil
}

// List returns the ledger in insertion order.
func (s *LedgerService) List(ctx context.Context) ([]core.Transaction, error) {
	txs, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return txs, nil
}

// Report loads the ledger and renders the monthly report.
func (s *LedgerService) Report(ctx context.Context) (string, error) {
	txs, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load ledger: %w", err)
	}

	result := report.Aggregate(txs)
	s.logger.Debug("Report generated",
		log.FieldOperation, log.OpReport,
		log.FieldCount, len(result.Rows))
	return report.Render(result), nil
}

// Close releases the underlying store.
func (s *LedgerService) Close() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
	}
	return nil
}

// Package memory is an in-memory ledger store, used by tests and as a
// scratch backend when no persistence is wanted.
package memory

import (
	"context"
	"sync"

	"pfr/internal/core"
)

type Store struct {
	mu  sync.Mutex
	txs []core.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Transaction(nil), s.txs...)
	return out, nil
}

func (s *Store) Save(_ context.Context, txs []core.Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]core.Transaction(nil), txs...)
	return nil
}

func (s *Store) Close() error {
	return nil
}

// Package jsonfile persists the ledger as a pretty-printed JSON document
// at a user-scoped path. Writes are atomic: the document goes to a .tmp
// file first and replaces the live file with a rename, so an interrupted
// write never corrupts the ledger.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pfr/internal/core"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing the store. Snapshots copy this file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(_ context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ledger file: %w", err)
	}
	txs, err := fromPersist(doc.Transactions)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger entry: %w", err)
	}
	return txs, nil
}

func (s *Store) Save(_ context.Context, txs []core.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	doc := document{
		Meta: Meta{
			Storage:   storageTag,
			Version:   formatVersion,
			Timestamp: time.Now().UTC(),
		},
		Transactions: toPersist(txs),
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encode ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

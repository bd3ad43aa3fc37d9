// Package sqlitestore is the SQLite-backed ledger store. The schema is
// managed through embedded migrations; insertion order is the rowid order,
// which keeps Load returning transactions in the sequence they were added.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"pfr/internal/core"
)

type Store struct {
	db   *sql.DB
	path string
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := applyMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file backing the store. Snapshots copy this file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, frequency, name, amount, category, account
		 FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			kind, frequency, name, amount string
			category, account             sql.NullString
		)
		if err := rows.Scan(&kind, &frequency, &name, &amount, &category, &account); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		tx := core.Transaction{
			Kind:      core.Kind(kind),
			Frequency: core.Frequency(frequency),
			Name:      name,
			Amount:    value,
		}
		if category.Valid {
			tx.Category = core.OptionalString(category.String)
		}
		if account.Valid {
			tx.Account = core.OptionalString(account.String)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid ledger entry %q: %w", name, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// Save replaces the stored sequence inside a single database transaction.
func (s *Store) Save(ctx context.Context, txs []core.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	for _, tx := range txs {
		var category, account any
		if v, ok := tx.CategoryLabel(); ok {
			category = v
		}
		if v, ok := tx.AccountLabel(); ok {
			account = v
		}
		_, err := dbTx.ExecContext(ctx,
			`INSERT INTO transactions (kind, frequency, name, amount, category, account)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			string(tx.Kind), string(tx.Frequency), tx.Name, tx.Amount.String(), category, account)
		if err != nil {
			return fmt.Errorf("insert transaction %q: %w", tx.Name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}

// Package ledger defines the port between the CLI surface and the
// transaction stores. A store persists the full ordered transaction
// sequence verbatim; report semantics never leak into it.
package ledger

import (
	"context"

	"pfr/internal/core"
)

// Store is the outbound port for ledger persistence.
type (
	Store interface {
		// Load returns the transactions in insertion order.
		Load(ctx context.Context) ([]core.Transaction, error)

		// Save replaces the stored sequence with txs, preserving order.
		Save(ctx context.Context, txs []core.Transaction) error

		// Close releases any underlying resources.
		Close() error
	}
)

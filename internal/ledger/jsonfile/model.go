package jsonfile

import (
	"time"

	"github.com/shopspring/decimal"

	"pfr/internal/core"
)

// Meta is recorded alongside every ledger document to identify the
// storage flavor and format version of the file.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// persistTransaction is the serialized form of a core.Transaction.
// Amounts are kept as decimal strings so values survive the round trip
// exactly. Optional fields are omitted when absent.
type persistTransaction struct {
	Kind      string          `json:"kind"`
	Frequency string          `json:"frequency"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  *string         `json:"category,omitempty"`
	Account   *string         `json:"account,omitempty"`
}

// document is the full on-disk ledger: metadata plus the ordered
// transaction sequence.
type document struct {
	Meta         Meta                 `json:"_meta"`
	Transactions []persistTransaction `json:"transactions"`
}

const (
	storageTag    = "json_ledger"
	formatVersion = 1
)

func toPersist(txs []core.Transaction) []persistTransaction {
	out := make([]persistTransaction, len(txs))
	for i, tx := range txs {
		out[i] = persistTransaction{
			Kind:      string(tx.Kind),
			Frequency: string(tx.Frequency),
			Name:      tx.Name,
			Amount:    tx.Amount,
			Category:  tx.Category,
			Account:   tx.Account,
		}
	}
	return out
}

func fromPersist(in []persistTransaction) ([]core.Transaction, error) {
	out := make([]core.Transaction, len(in))
	for i, p := range in {
		tx := core.Transaction{
			Kind:      core.Kind(p.Kind),
			Frequency: core.Frequency(p.Frequency),
			Name:      p.Name,
			Amount:    p.Amount,
			Category:  p.Category,
			Account:   p.Account,
		}
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		out[i] = tx
	}
	return out, nil
}

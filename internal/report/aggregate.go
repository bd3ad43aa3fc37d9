package report

import (
	"github.com/shopspring/decimal"

	"pfr/internal/core"
)

// Bucket labels applied when a transaction carries no category or account.
// They are presentation defaults, resolved here and never stored on the
// transaction itself.
const (
	OtherBucket       = "(other)"
	UnallocatedBucket = "(unallocated)"
)

type (
	// Row is one line of the report table. At most one of IncomeLabel and
	// ExpenseLabel is set, matching the source transaction's kind.
	// MonthlyValue is signed: positive for income, negative for expenses.
	Row struct {
		IncomeLabel  string
		ExpenseLabel string
		MonthlyValue decimal.Decimal
		Category     *string
		Account      *string
	}

	// Bucket is one entry of the category breakdown or account coverage.
	// Amount is an unsigned magnitude.
	Bucket struct {
		Label  string
		Amount decimal.Decimal
	}

	// Result holds everything the renderer needs: the row table in ledger
	// order, the signed net monthly total, and the two bucket listings in
	// first-seen order.
	Result struct {
		Rows      []Row
		Total     decimal.Decimal
		Breakdown []Bucket
		Coverage  []Bucket
	}
)

// Aggregate scans the transactions in ledger order and derives the three
// report views. It performs no I/O and cannot fail on validated input;
// malformed transactions are a construction-time concern.
func Aggregate(txs []core.Transaction) Result {
	res := Result{
		Rows:  make([]Row, 0, len(txs)),
		Total: decimal.Zero,
	}
	breakdown := newBucketList()
	coverage := newBucketList()

	for _, tx := range txs {
		value := Normalize(tx.Amount, tx.Frequency)
		row := Row{Category: tx.Category, Account: tx.Account}

		if tx.Kind == core.Expense {
			row.ExpenseLabel = tx.Name
			row.MonthlyValue = value.Neg()

			category, ok := tx.CategoryLabel()
			if !ok {
				category = OtherBucket
			}
			breakdown.add(category, value)

			account, ok := tx.AccountLabel()
			if !ok {
				account = UnallocatedBucket
			}
			coverage.add(account, value)
		} else {
			row.IncomeLabel = tx.Name
			row.MonthlyValue = value
		}

		res.Total = res.Total.Add(row.MonthlyValue)
		res.Rows = append(res.Rows, row)
	}

	// The unallocated bucket is part of the coverage contract even when
	// nothing feeds it.
	coverage.ensure(UnallocatedBucket)

	res.Breakdown = breakdown.buckets
	res.Coverage = coverage.buckets
	return res
}

// bucketList accumulates amounts per label while preserving first-seen
// order, the iteration order of both report listings.
type bucketList struct {
	buckets []Bucket
	index   map[string]int
}

func newBucketList() *bucketList {
	return &bucketList{index: make(map[string]int)}
}

func (b *bucketList) add(label string, amount decimal.Decimal) {
	i, ok := b.index[label]
	if !ok {
		b.index[label] = len(b.buckets)
		b.buckets = append(b.buckets, Bucket{Label: label, Amount: amount})
		return
	}
	b.buckets[i].Amount = b.buckets[i].Amount.Add(amount)
}

func (b *bucketList) ensure(label string) {
	if _, ok := b.index[label]; !ok {
		b.add(label, decimal.Zero)
	}
}

package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

type (
	// Kind tells whether a transaction adds to or subtracts from the
	// monthly cash flow.
	Kind string

	// Frequency is the natural recurrence interval of a transaction.
	Frequency string

	// Transaction is one recurring income or expense line in the ledger.
	// Amount is always a positive magnitude; the sign is implied by Kind.
	// Category and Account are nil when the user never supplied them.
	Transaction struct {
		Kind      Kind
		Frequency Frequency
		Name      string
		Amount    decimal.Decimal
		Category  *string
		Account   *string
	}
)

var (
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyName        = errors.New("empty transaction name")
)

// ParseKind recognizes "income" and "expense", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrInvalidKind
	}
}

// ParseFrequency recognizes "weekly" and "monthly", case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", ErrInvalidFrequency
	}
}

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (f Frequency) Validate() error {
	switch f {
	case Weekly, Monthly:
		return nil
	default:
		return ErrInvalidFrequency
	}
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if err := t.Frequency.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Name)) == 0 {
		return ErrEmptyName
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// CategoryLabel returns the category and whether one was supplied.
// Empty strings count as absent; bucket defaults are applied by the
// report aggregator, not here.
func (t Transaction) CategoryLabel() (string, bool) {
	return optionalLabel(t.Category)
}

// AccountLabel returns the account and whether one was supplied.
func (t Transaction) AccountLabel() (string, bool) {
	return optionalLabel(t.Account)
}

func optionalLabel(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return "", false
	}
	return v, true
}

// OptionalString boxes a non-empty string, mapping "" to absent.
// Used by stores and the CLI to build optional Transaction fields.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

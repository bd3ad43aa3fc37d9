package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"pfr/internal/core"
	"pfr/internal/ledger/memory"
)

func newTestService() *LedgerService {
	return NewLedgerService(memory.New(), nil)
}

func tx(kind core.Kind, freq core.Frequency, name, amount string) core.Transaction {
	return core.Transaction{
		Kind:      kind,
		Frequency: freq,
		Name:      name,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestInitCreatesEmptyLedger(t *testing.T) {
	s := newTestService()
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	txs, err := s.List(context.Background())
	if err != nil || len(txs) != 0 {
		t.Fatalf("expected empty ledger, got %v err=%v", txs, err)
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	if err := s.Add(ctx, tx(core.Income, core.Monthly, "work", "800")); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if err := s.Add(ctx, tx(core.Expense, core.Weekly, "food", "40")); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	txs, err := s.List(ctx)
	if err != nil || len(txs) != 2 {
		t.Fatalf("unexpected list: %v err=%v", txs, err)
	}
	if txs[0].Name != "work" || txs[1].Name != "food" {
		t.Fatalf("order not preserved: %v", txs)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	if err := s.Add(ctx, tx(core.Expense, core.Weekly, "petrol", "60")); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	err := s.Add(ctx, tx(core.Expense, core.Monthly, "petrol", "99"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// The failed add must not change the ledger.
	txs, _ := s.List(ctx)
	if len(txs) != 1 || !txs[0].Amount.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("ledger changed by rejected add: %v", txs)
	}
}

func TestAddRejectsInvalidTransaction(t *testing.T) {
	s := newTestService()
	bad := core.Transaction{Kind: "transfer", Frequency: core.Weekly, Name: "x", Amount: decimal.NewFromInt(1)}
	if err := s.Add(context.Background(), bad); !errors.Is(err, core.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestReportRendersLedger(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	adds := []core.Transaction{
		tx(core.Income, core.Monthly, "work", "800"),
		{
			Kind: core.Expense, Frequency: core.Weekly, Name: "petrol",
			Amount:   decimal.NewFromInt(60),
			Category: core.OptionalString("car"),
			Account:  core.OptionalString("direct debit"),
		},
	}
	for _, a := range adds {
		if err := s.Add(ctx, a); err != nil {
			t.Fatalf("Add err=%v", err)
		}
	}
	out, err := s.Report(ctx)
	if err != nil {
		t.Fatalf("Report err=%v", err)
	}
	for _, want := range []string{"work", "petrol", "(  256.80)", "TOTAL:   543.20", "Breakdown:", "Coverage:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

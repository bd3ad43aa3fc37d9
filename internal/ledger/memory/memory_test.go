package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"pfr/internal/core"
)

func TestMemoryStoreSaveAndLoad(t *testing.T) {
	s := New()
	txs := []core.Transaction{
		{Kind: core.Income, Frequency: core.Monthly, Name: "work", Amount: decimal.NewFromInt(800)},
		{Kind: core.Expense, Frequency: core.Weekly, Name: "food", Amount: decimal.NewFromInt(40)},
	}
	if err := s.Save(context.Background(), txs); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected load: %v err=%v", got, err)
	}
	if got[0].Name != "work" || got[1].Name != "food" {
		t.Fatalf("order not preserved: %v", got)
	}

	// The store keeps its own copy.
	txs[0].Name = "mutated"
	got, _ = s.Load(context.Background())
	if got[0].Name != "work" {
		t.Fatalf("store aliased caller slice")
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := New()
	bad := []core.Transaction{{Kind: "transfer", Frequency: core.Weekly, Name: "x", Amount: decimal.NewFromInt(1)}}
	if err := s.Save(context.Background(), bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

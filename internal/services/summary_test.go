package services

import (
	"context"
	"path/filepath"
	"testing"

	"wallet/internal/core"
	"wallet/internal/storage"
)

func newTestServices(t *testing.T) (*TrackerService, *SummaryService) {
	t.Helper()
	repo, err := storage.Open(filepath.Join(t.TempDir(), "wallet.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewTrackerService(repo, nil), NewSummaryService(repo)
}

func seedLedger(t *testing.T, tracker *TrackerService) {
	t.Helper()
	ctx := context.Background()

	seeds := []struct {
		kind  core.TransactionKind
		title string
		cents int64
		date  core.Date
	}{
		{core.KindIncome, "January paycheck", 250000, core.NewDate(2024, 1, 31)},
		{core.KindIncome, "February paycheck", 250000, core.NewDate(2024, 2, 29)},
		{core.KindExpense, "Rent payment", 120000, core.NewDate(2024, 2, 1)},
		{core.KindExpense, "Groceries", 4599, core.NewDate(2024, 2, 15)},
	}
	for _, s := range seeds {
		if _, err := tracker.CreateTransaction(ctx, s.kind, s.title, core.Money{Cents: s.cents}, s.date, "", ""); err != nil {
			t.Fatalf("seed %q: %v", s.title, err)
		}
	}
}

func TestTotalsAndBalance(t *testing.T) {
	tracker, summary := newTestServices(t)
	seedLedger(t, tracker)

	income, expenses, balance, err := summary.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if income.Cents != 500000 {
		t.Errorf("income = %d, want 500000", income.Cents)
	}
	if expenses.Cents != 124599 {
		t.Errorf("expenses = %d, want 124599", expenses.Cents)
	}
	if balance.Cents != 375401 {
		t.Errorf("balance = %d, want 375401", balance.Cents)
	}
}

func TestSummaryAggregates(t *testing.T) {
	tracker, summary := newTestServices(t)
	seedLedger(t, tracker)

	sum, err := summary.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.IncomeCount != 2 || sum.ExpenseCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", sum.IncomeCount, sum.ExpenseCount)
	}
	if sum.Balance.Cents != 375401 {
		t.Errorf("balance = %d, want 375401", sum.Balance.Cents)
	}
	if len(sum.Recent) != 4 {
		t.Fatalf("recent length = %d, want 4", len(sum.Recent))
	}
	// Most recent by date first, across both kinds.
	if sum.Recent[0].Title() != "February paycheck" {
		t.Errorf("recent[0] = %q, want February paycheck", sum.Recent[0].Title())
	}
	if sum.Recent[1].Title() != "Groceries" {
		t.Errorf("recent[1] = %q, want Groceries", sum.Recent[1].Title())
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	_, summary := newTestServices(t)

	sum, err := summary.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalIncome.Cents != 0 || sum.TotalExpenses.Cents != 0 || sum.Balance.Cents != 0 {
		t.Errorf("empty ledger totals should be zero: %+v", sum)
	}
	if len(sum.Recent) != 0 {
		t.Errorf("expected no recent transactions, got %d", len(sum.Recent))
	}
}

func TestListTransactionsMergedOrder(t *testing.T) {
	tracker, summary := newTestServices(t)
	seedLedger(t, tracker)

	list, err := summary.ListTransactions(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	want := []string{"February paycheck", "Groceries", "Rent payment", "January paycheck"}
	if len(list) != len(want) {
		t.Fatalf("length = %d, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].Title() != w {
			t.Errorf("position %d = %q, want %q", i, list[i].Title(), w)
		}
	}
}

func TestSearchAcrossKinds(t *testing.T) {
	tracker, summary := newTestServices(t)
	seedLedger(t, tracker)

	ctx := context.Background()

	matches, err := summary.Search(ctx, "paycheck", "", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	matches, err = summary.Search(ctx, "rent", "", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 || matches[0].Kind != core.KindExpense {
		t.Fatalf("expected one expense match, got %+v", matches)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	tracker, summary := newTestServices(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		if _, err := tracker.CreateTransaction(ctx, core.KindExpense, "Coffee run", core.Money{Cents: 450}, core.NewDate(2024, 3, i), "", ""); err != nil {
			t.Fatalf("seed expense %d: %v", i, err)
		}
	}

	matches, err := summary.Search(ctx, "coffee", "", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != defaultSearchLimit {
		t.Fatalf("default limit: got %d, want %d", len(matches), defaultSearchLimit)
	}

	matches, err = summary.Search(ctx, "coffee", "", 3)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("explicit limit: got %d, want 3", len(matches))
	}
}

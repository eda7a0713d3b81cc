package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"wallet/internal/core"
	"wallet/internal/storage"
)

const (
	recentTransactions = 10

	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// Summary is the dashboard aggregate: totals, balance, counts and the
// most recent transactions across both kinds.
type Summary struct {
	TotalIncome   core.Money
	TotalExpenses core.Money
	Balance       core.Money
	IncomeCount   int
	ExpenseCount  int
	Recent        []core.Transaction
}

// SummaryService answers aggregate and cross-kind read queries.
type SummaryService struct {
	storage *storage.Repository
}

func NewSummaryService(storage *storage.Repository) *SummaryService {
	return &SummaryService{storage: storage}
}

// Totals returns total income, total expenses and the balance. The two
// totals come from one storage snapshot so they never disagree.
func (s *SummaryService) Totals(ctx context.Context) (income, expenses, balance core.Money, err error) {
	income, expenses, err = s.storage.Totals(ctx)
	if err != nil {
		return core.Money{}, core.Money{}, core.Money{}, err
	}
	return income, expenses, core.Balance(income, expenses), nil
}

// Summary builds the dashboard aggregate. The independent reads run
// concurrently; any failure fails the whole call.
func (s *SummaryService) Summary(ctx context.Context) (Summary, error) {
	var (
		sum      Summary
		incomes  []core.Income
		expenses []core.Expense
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		income, exp, err := s.storage.Totals(gctx)
		if err != nil {
			return err
		}
		sum.TotalIncome = income
		sum.TotalExpenses = exp
		return nil
	})
	g.Go(func() error {
		var err error
		sum.IncomeCount, err = s.storage.CountIncomes(gctx, core.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		sum.ExpenseCount, err = s.storage.CountExpenses(gctx, core.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = s.storage.ListIncomes(gctx, core.Filter{}, core.Page{Limit: recentTransactions})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.storage.ListExpenses(gctx, core.Filter{}, core.Page{Limit: recentTransactions})
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("build summary: %w", err)
	}

	sum.Balance = core.Balance(sum.TotalIncome, sum.TotalExpenses)
	sum.Recent = mergeTransactions(incomes, expenses, recentTransactions)
	return sum, nil
}

// ListTransactions returns the merged income and expense listing for
// the filter, ordered by the listing contract.
func (s *SummaryService) ListTransactions(ctx context.Context, f core.Filter) ([]core.Transaction, error) {
	var (
		incomes  []core.Income
		expenses []core.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.storage.ListIncomes(gctx, f, core.All)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.storage.ListExpenses(gctx, f, core.All)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return mergeTransactions(incomes, expenses, 0), nil
}

// Search returns up to limit transactions matching the query text.
// kind narrows the search to one side; empty kind searches both.
// limit <= 0 uses the default; oversized limits are capped.
func (s *SummaryService) Search(ctx context.Context, query string, kind core.TransactionKind, limit int) ([]core.Transaction, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	f := core.Filter{Search: query}
	var (
		incomes  []core.Income
		expenses []core.Expense
		err      error
	)
	switch kind {
	case core.KindIncome:
		incomes, err = s.storage.ListIncomes(ctx, f, core.All)
	case core.KindExpense:
		expenses, err = s.storage.ListExpenses(ctx, f, core.All)
	default:
		return s.searchBoth(ctx, f, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search transactions: %w", err)
	}

	return mergeTransactions(incomes, expenses, limit), nil
}

func (s *SummaryService) searchBoth(ctx context.Context, f core.Filter, limit int) ([]core.Transaction, error) {
	list, err := s.ListTransactions(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func mergeTransactions(incomes []core.Income, expenses []core.Expense, limit int) []core.Transaction {
	merged := make([]core.Transaction, 0, len(incomes)+len(expenses))
	for _, inc := range incomes {
		merged = append(merged, core.IncomeTransaction(inc))
	}
	for _, exp := range expenses {
		merged = append(merged, core.ExpenseTransaction(exp))
	}
	core.SortTransactions(merged)
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

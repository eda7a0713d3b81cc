package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wallet/internal/core"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "wallet.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustCategory(t *testing.T, repo *Repository, name string) core.Category {
	t.Helper()
	c, err := repo.GetOrCreateCategory(context.Background(), name)
	if err != nil {
		t.Fatalf("get or create category %q: %v", name, err)
	}
	return c
}

func mustIncome(t *testing.T, repo *Repository, catID int64, source string, cents int64, date core.Date) core.Income {
	t.Helper()
	inc, err := repo.CreateIncome(context.Background(), core.Income{
		CategoryID: catID,
		Source:     source,
		Amount:     core.Money{Cents: cents},
		Date:       date,
	})
	if err != nil {
		t.Fatalf("create income %q: %v", source, err)
	}
	return inc
}

func mustExpense(t *testing.T, repo *Repository, title string, cents int64, date core.Date) core.Expense {
	t.Helper()
	exp, err := repo.CreateExpense(context.Background(), core.Expense{
		Title:  title,
		Amount: core.Money{Cents: cents},
		Date:   date,
	})
	if err != nil {
		t.Fatalf("create expense %q: %v", title, err)
	}
	return exp
}

func TestGetOrCreateCategoryIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	first := mustCategory(t, repo, "Salary")
	second := mustCategory(t, repo, "Salary")

	if first.ID != second.ID {
		t.Fatalf("expected same category id, got %d and %d", first.ID, second.ID)
	}

	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cats))
	}
}

func TestListCategoriesOrderedByName(t *testing.T) {
	repo := newTestRepo(t)

	mustCategory(t, repo, "Salary")
	mustCategory(t, repo, "Bonus")
	mustCategory(t, repo, "Freelance")

	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	want := []string{"Bonus", "Freelance", "Salary"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, w := range want {
		if cats[i].Name != w {
			t.Errorf("position %d: expected %q, got %q", i, w, cats[i].Name)
		}
	}
}

func TestCreateIncomeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")

	created := mustIncome(t, repo, cat.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CategoryName != "Salary" {
		t.Fatalf("expected category name resolved, got %q", created.CategoryName)
	}

	got, err := repo.GetIncome(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get income: %v", err)
	}
	if got.Source != "March paycheck" || got.Amount.Cents != 250000 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Date.String() != "2024-03-01" {
		t.Fatalf("date mismatch: %q", got.Date.String())
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps set")
	}
}

func TestCreateIncomeUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.CreateIncome(context.Background(), core.Income{
		CategoryID: 999,
		Source:     "Ghost paycheck",
		Amount:     core.Money{Cents: 100},
		Date:       core.Today(),
	})
	if !errors.Is(err, core.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateIncomeRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")

	_, err := repo.CreateIncome(context.Background(), core.Income{
		CategoryID: cat.ID,
		Source:     "x",
		Amount:     core.Money{Cents: 100},
		Date:       core.Today(),
	})
	ve, ok := core.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "source" {
		t.Fatalf("expected source field, got %q", ve.Field)
	}
}

func TestUpdateIncomePatchAppliesOnlyGivenFields(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	inc := mustIncome(t, repo, cat.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))

	amount := core.Money{Cents: 260000}
	updated, err := repo.UpdateIncome(context.Background(), inc.ID, core.IncomePatch{Amount: &amount})
	if err != nil {
		t.Fatalf("update income: %v", err)
	}

	if updated.Amount.Cents != 260000 {
		t.Fatalf("amount not applied: %d", updated.Amount.Cents)
	}
	if updated.Source != "March paycheck" || updated.Date.String() != "2024-03-01" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.ID != inc.ID || !updated.CreatedAt.Equal(inc.CreatedAt) {
		t.Fatal("id and created_at must be preserved")
	}
	if !updated.UpdatedAt.After(inc.UpdatedAt) && !updated.UpdatedAt.Equal(inc.UpdatedAt) {
		t.Fatal("updated_at must be refreshed")
	}
}

func TestUpdateIncomeRejectsInvalidMerge(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	inc := mustIncome(t, repo, cat.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))

	bad := core.Money{Cents: 0}
	_, err := repo.UpdateIncome(context.Background(), inc.ID, core.IncomePatch{Amount: &bad})
	if _, ok := core.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Rejected patch must not leak into the stored record.
	got, err := repo.GetIncome(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("get income: %v", err)
	}
	if got.Amount.Cents != 250000 {
		t.Fatalf("rejected update was persisted: %d", got.Amount.Cents)
	}
}

func TestUpdateIncomeUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	inc := mustIncome(t, repo, cat.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))

	missing := int64(999)
	_, err := repo.UpdateIncome(context.Background(), inc.ID, core.IncomePatch{CategoryID: &missing})
	if !errors.Is(err, core.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteIncome(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	inc := mustIncome(t, repo, cat.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))

	if err := repo.DeleteIncome(context.Background(), inc.ID); err != nil {
		t.Fatalf("delete income: %v", err)
	}
	if _, err := repo.GetIncome(context.Background(), inc.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.DeleteIncome(context.Background(), inc.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete should report ErrNotFound, got %v", err)
	}
}

func TestPurgeIncomesSkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	a := mustIncome(t, repo, cat.ID, "First", 100, core.NewDate(2024, 1, 1))
	b := mustIncome(t, repo, cat.ID, "Second", 200, core.NewDate(2024, 1, 2))

	if err := repo.PurgeIncomes(context.Background(), a.ID, b.ID, 9999); err != nil {
		t.Fatalf("purge incomes: %v", err)
	}
	n, err := repo.CountIncomes(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("count incomes: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty table, got %d rows", n)
	}
}

func TestListIncomesOrderAndPaging(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")

	mustIncome(t, repo, cat.ID, "Oldest", 100, core.NewDate(2024, 1, 1))
	mustIncome(t, repo, cat.ID, "Middle", 200, core.NewDate(2024, 2, 1))
	mustIncome(t, repo, cat.ID, "Newest", 300, core.NewDate(2024, 3, 1))

	list, err := repo.ListIncomes(context.Background(), core.Filter{}, core.All)
	if err != nil {
		t.Fatalf("list incomes: %v", err)
	}
	want := []string{"Newest", "Middle", "Oldest"}
	for i, w := range want {
		if list[i].Source != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, list[i].Source)
		}
	}

	page, err := repo.ListIncomes(context.Background(), core.Filter{}, core.Page{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list incomes paged: %v", err)
	}
	if len(page) != 1 || page[0].Source != "Middle" {
		t.Fatalf("expected paged [Middle], got %+v", page)
	}
}

func TestListIncomesSameDateOrderedByCreation(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	date := core.NewDate(2024, 3, 1)

	mustIncome(t, repo, cat.ID, "Earlier insert", 100, date)
	mustIncome(t, repo, cat.ID, "Later insert", 200, date)

	list, err := repo.ListIncomes(context.Background(), core.Filter{}, core.All)
	if err != nil {
		t.Fatalf("list incomes: %v", err)
	}
	if list[0].Source != "Later insert" {
		t.Fatalf("expected most recent insert first, got %q", list[0].Source)
	}
}

func TestListIncomesFilter(t *testing.T) {
	repo := newTestRepo(t)
	salary := mustCategory(t, repo, "Salary")
	bonus := mustCategory(t, repo, "Bonus")

	mustIncome(t, repo, salary.ID, "March paycheck", 250000, core.NewDate(2024, 3, 1))
	mustIncome(t, repo, bonus.ID, "Year-end bonus", 100000, core.NewDate(2024, 12, 20))
	mustIncome(t, repo, salary.ID, "April paycheck", 250000, core.NewDate(2024, 4, 1))

	ctx := context.Background()

	byCategory, err := repo.ListIncomes(ctx, core.Filter{Category: "Bonus"}, core.All)
	if err != nil {
		t.Fatalf("filter by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Source != "Year-end bonus" {
		t.Fatalf("category filter: %+v", byCategory)
	}

	bySearch, err := repo.ListIncomes(ctx, core.Filter{Search: "PAYCHECK"}, core.All)
	if err != nil {
		t.Fatalf("filter by search: %v", err)
	}
	if len(bySearch) != 2 {
		t.Fatalf("case-insensitive search should match 2, got %d", len(bySearch))
	}

	from := core.NewDate(2024, 4, 1)
	byDate, err := repo.ListIncomes(ctx, core.Filter{DateFrom: &from}, core.All)
	if err != nil {
		t.Fatalf("filter by date: %v", err)
	}
	if len(byDate) != 2 {
		t.Fatalf("inclusive date_from should match 2, got %d", len(byDate))
	}

	min := core.Money{Cents: 200000}
	byAmount, err := repo.ListIncomes(ctx, core.Filter{AmountMin: &min}, core.All)
	if err != nil {
		t.Fatalf("filter by amount: %v", err)
	}
	if len(byAmount) != 2 {
		t.Fatalf("amount_min should match 2, got %d", len(byAmount))
	}
}

func TestSearchMatchesCategoryName(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Freelance")
	mustIncome(t, repo, cat.ID, "Website build", 50000, core.NewDate(2024, 5, 5))

	list, err := repo.ListIncomes(context.Background(), core.Filter{Search: "freelance"}, core.All)
	if err != nil {
		t.Fatalf("search by category name: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected category-name match, got %d rows", len(list))
	}
}

func TestExpenseRoundTripAndUpdate(t *testing.T) {
	repo := newTestRepo(t)
	exp := mustExpense(t, repo, "Groceries", 4599, core.NewDate(2024, 3, 10))

	got, err := repo.GetExpense(context.Background(), exp.ID)
	if err != nil {
		t.Fatalf("get expense: %v", err)
	}
	if got.Title != "Groceries" || got.Amount.Cents != 4599 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	title := "Weekly groceries"
	updated, err := repo.UpdateExpense(context.Background(), exp.ID, core.ExpensePatch{Title: &title})
	if err != nil {
		t.Fatalf("update expense: %v", err)
	}
	if updated.Title != "Weekly groceries" || updated.Amount.Cents != 4599 {
		t.Fatalf("patch semantics violated: %+v", updated)
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.DeleteExpense(context.Background(), 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSumsAndTotals(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")

	mustIncome(t, repo, cat.ID, "First pay", 250000, core.NewDate(2024, 1, 1))
	mustIncome(t, repo, cat.ID, "Second pay", 250000, core.NewDate(2024, 2, 1))
	mustExpense(t, repo, "Rent payment", 120000, core.NewDate(2024, 1, 5))
	mustExpense(t, repo, "Groceries", 4599, core.NewDate(2024, 1, 8))

	ctx := context.Background()

	income, expenses, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if income.Cents != 500000 {
		t.Fatalf("expected income 500000 cents, got %d", income.Cents)
	}
	if expenses.Cents != 124599 {
		t.Fatalf("expected expenses 124599 cents, got %d", expenses.Cents)
	}
	if core.Balance(income, expenses).Cents != 375401 {
		t.Fatalf("balance mismatch: %d", core.Balance(income, expenses).Cents)
	}

	min := core.Money{Cents: 100000}
	sum, err := repo.SumExpenses(ctx, core.Filter{AmountMin: &min})
	if err != nil {
		t.Fatalf("sum expenses: %v", err)
	}
	if sum.Cents != 120000 {
		t.Fatalf("filtered sum mismatch: %d", sum.Cents)
	}
}

func TestTotalsEmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)

	income, expenses, err := repo.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if income.Cents != 0 || expenses.Cents != 0 {
		t.Fatalf("expected zero totals, got %d / %d", income.Cents, expenses.Cents)
	}
}

func TestTotalsShiftByExactDeltas(t *testing.T) {
	repo := newTestRepo(t)
	cat := mustCategory(t, repo, "Salary")
	ctx := context.Background()

	inc := mustIncome(t, repo, cat.ID, "March paycheck", 100000, core.NewDate(2024, 3, 1))
	exp := mustExpense(t, repo, "Rent payment", 25000, core.NewDate(2024, 3, 2))

	incomeBefore, expensesBefore, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}

	newExpenseAmount := core.Money{Cents: 30000}
	if _, err := repo.UpdateExpense(ctx, exp.ID, core.ExpensePatch{Amount: &newExpenseAmount}); err != nil {
		t.Fatalf("update expense: %v", err)
	}

	incomeAfter, expensesAfter, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals after expense update: %v", err)
	}
	if diff := expensesAfter.Cents - expensesBefore.Cents; diff != 5000 {
		t.Errorf("expense total shifted by %d cents, want exactly 5000", diff)
	}
	if incomeAfter.Cents != incomeBefore.Cents {
		t.Errorf("income total moved across an expense update: %d -> %d", incomeBefore.Cents, incomeAfter.Cents)
	}

	newIncomeAmount := core.Money{Cents: 120000}
	if _, err := repo.UpdateIncome(ctx, inc.ID, core.IncomePatch{Amount: &newIncomeAmount}); err != nil {
		t.Fatalf("update income: %v", err)
	}

	incomeAfter, expensesAfter, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals after income update: %v", err)
	}
	if diff := incomeAfter.Cents - incomeBefore.Cents; diff != 20000 {
		t.Errorf("income total shifted by %d cents, want exactly 20000", diff)
	}

	if err := repo.DeleteExpense(ctx, exp.ID); err != nil {
		t.Fatalf("delete expense: %v", err)
	}
	incomeFinal, expensesFinal, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals after expense delete: %v", err)
	}
	if diff := expensesAfter.Cents - expensesFinal.Cents; diff != 30000 {
		t.Errorf("expense delete removed %d cents from the total, want exactly 30000", diff)
	}
	if incomeFinal.Cents != incomeAfter.Cents {
		t.Errorf("income total moved across an expense delete: %d -> %d", incomeAfter.Cents, incomeFinal.Cents)
	}

	if err := repo.DeleteIncome(ctx, inc.ID); err != nil {
		t.Fatalf("delete income: %v", err)
	}
	incomeFinal, expensesFinal, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals after income delete: %v", err)
	}
	if incomeFinal.Cents != 0 {
		t.Errorf("income total after deleting the only income = %d, want 0", incomeFinal.Cents)
	}
	if expensesFinal.Cents != 0 {
		t.Errorf("expense total after deleting everything = %d, want 0", expensesFinal.Cents)
	}
}

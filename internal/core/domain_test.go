package core

import (
	"strings"
	"testing"
	"time"
)

func validIncome() Income {
	return Income{
		CategoryID: 1,
		Source:     "Consulting",
		Amount:     Money{Cents: 250000},
		Date:       Today(),
	}
}

func TestIncomeValidate(t *testing.T) {
	if err := validIncome().Validate(); err != nil {
		t.Fatalf("valid income rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Income)
		field  string
	}{
		{"missing category", func(i *Income) { i.CategoryID = 0 }, "category_id"},
		{"short source", func(i *Income) { i.Source = " a " }, "source"},
		{"long source", func(i *Income) { i.Source = strings.Repeat("x", 101) }, "source"},
		{"zero amount", func(i *Income) { i.Amount = Money{} }, "amount"},
		{"amount over max", func(i *Income) { i.Amount = Money{Cents: MaxCents + 1} }, "amount"},
		{"far future date", func(i *Income) { i.Date = Date{Time: Today().AddDate(2, 0, 0)} }, "date"},
		{"long note", func(i *Income) { i.Note = strings.Repeat("n", 501) }, "note"},
	}
	for _, tc := range cases {
		income := validIncome()
		tc.mutate(&income)
		err := income.Validate()
		if err == nil {
			t.Fatalf("%s: expected rejection", tc.name)
		}
		ve, ok := AsValidation(err)
		if !ok {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, ve.Field)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	expense := Expense{Title: "Office Supplies", Amount: Money{Cents: 25000}, Date: Today()}
	if err := expense.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	expense.Title = "x"
	if err := expense.Validate(); err == nil {
		t.Fatal("one-character title should be rejected")
	}
	expense.Title = "ok"
	expense.Amount = Money{Cents: 0}
	if err := expense.Validate(); err == nil {
		t.Fatal("zero amount should be rejected")
	}
}

func TestNormalizeText(t *testing.T) {
	got, err := NormalizeText("source", "  Salary  ")
	if err != nil || got != "Salary" {
		t.Fatalf("expected trimmed Salary, got %q (err=%v)", got, err)
	}
	if _, err := NormalizeText("source", "   "); err == nil {
		t.Fatal("whitespace-only text should be rejected")
	}
}

func TestSortTransactionsOrdering(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mk := func(id int64, date Date, created time.Time) Transaction {
		return ExpenseTransaction(Expense{ID: id, Title: "t", Date: date, CreatedAt: created})
	}
	ts := []Transaction{
		mk(1, NewDate(2024, 5, 1), base),
		mk(2, NewDate(2024, 6, 1), base.Add(-time.Hour)),
		mk(3, NewDate(2024, 6, 1), base), // same date as 2, created later
		mk(4, NewDate(2024, 4, 1), base),
	}
	SortTransactions(ts)

	want := []int64{3, 2, 1, 4}
	for i, id := range want {
		if ts[i].ID() != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, ts[i].ID())
		}
	}
}

func TestTransactionVariant(t *testing.T) {
	income := IncomeTransaction(Income{ID: 7, Source: "Consulting", CategoryName: "Salary", Note: "march", Amount: Money{Cents: 100}})
	if income.Kind != KindIncome || income.ID() != 7 || income.Title() != "Consulting" {
		t.Fatalf("unexpected income variant: %+v", income)
	}
	if income.CategoryName() != "Salary" || income.Note() != "march" {
		t.Fatalf("unexpected income fields: %q %q", income.CategoryName(), income.Note())
	}

	expense := ExpenseTransaction(Expense{ID: 9, Title: "Rent", Amount: Money{Cents: 200}})
	if expense.Kind != KindExpense || expense.CategoryName() != "Expense" || expense.Note() != "" {
		t.Fatalf("unexpected expense variant: %+v", expense)
	}
}

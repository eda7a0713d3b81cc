package core

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	minTextLen = 2
	maxTextLen = 100
	maxNoteLen = 500
)

type (
	// Category groups income records. Unique by name, never deleted
	// while an income references it.
	Category struct {
		ID        int64
		Name      string
		CreatedAt time.Time
	}

	// Income is money received, always attached to a category.
	Income struct {
		ID           int64
		CategoryID   int64
		CategoryName string
		Source       string
		Amount       Money
		Date         Date
		Note         string
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	// Expense is money spent. No foreign keys.
	Expense struct {
		ID        int64
		Title     string
		Amount    Money
		Date      Date
		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

// NormalizeText trims whitespace and enforces the 2..100 length rule
// applied to income sources and expense titles.
func NormalizeText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < minTextLen {
		return "", invalidText(field, fmt.Sprintf("Must be at least %d characters long", minTextLen))
	}
	if len(s) > maxTextLen {
		return "", invalidText(field, fmt.Sprintf("Cannot exceed %d characters", maxTextLen))
	}
	return s, nil
}

// NormalizeNote trims an optional note; empty is fine, over 500 chars is not.
func NormalizeNote(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxNoteLen {
		return "", invalidText("note", fmt.Sprintf("Cannot exceed %d characters", maxNoteLen))
	}
	return s, nil
}

func (i Income) Validate() error {
	if i.CategoryID <= 0 {
		return &ValidationError{Field: "category_id", Reason: "Category is required", Err: ErrCategoryNotFound}
	}
	if _, err := NormalizeText("source", i.Source); err != nil {
		return err
	}
	if err := i.Amount.Validate(); err != nil {
		return err
	}
	if err := i.Date.Validate(); err != nil {
		return err
	}
	if _, err := NormalizeNote(i.Note); err != nil {
		return err
	}
	return nil
}

func (e Expense) Validate() error {
	if _, err := NormalizeText("title", e.Title); err != nil {
		return err
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return e.Date.Validate()
}

// IncomePatch is a partial update: only non-nil fields are applied.
type IncomePatch struct {
	CategoryID *int64
	Source     *string
	Amount     *Money
	Date       *Date
	Note       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p IncomePatch) IsEmpty() bool {
	return p.CategoryID == nil && p.Source == nil && p.Amount == nil && p.Date == nil && p.Note == nil
}

// ExpensePatch is a partial update for expenses.
type ExpensePatch struct {
	Title  *string
	Amount *Money
	Date   *Date
}

func (p ExpensePatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil && p.Date == nil
}

// TransactionKind discriminates the Transaction variant.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is the discriminated union of an income or an expense,
// used by the combined-id endpoints and merged listings. Exactly one of
// Income/Expense is set, matching Kind.
type Transaction struct {
	Kind    TransactionKind
	Income  *Income
	Expense *Expense
}

// IncomeTransaction wraps an income as a Transaction.
func IncomeTransaction(i Income) Transaction {
	return Transaction{Kind: KindIncome, Income: &i}
}

// ExpenseTransaction wraps an expense as a Transaction.
func ExpenseTransaction(e Expense) Transaction {
	return Transaction{Kind: KindExpense, Expense: &e}
}

func (t Transaction) ID() int64 {
	if t.Kind == KindIncome {
		return t.Income.ID
	}
	return t.Expense.ID
}

// Title is the income source or the expense title.
func (t Transaction) Title() string {
	if t.Kind == KindIncome {
		return t.Income.Source
	}
	return t.Expense.Title
}

func (t Transaction) Amount() Money {
	if t.Kind == KindIncome {
		return t.Income.Amount
	}
	return t.Expense.Amount
}

func (t Transaction) Date() Date {
	if t.Kind == KindIncome {
		return t.Income.Date
	}
	return t.Expense.Date
}

// CategoryName is the income category, or the literal "Expense" for
// expenses, mirroring the listing payloads.
func (t Transaction) CategoryName() string {
	if t.Kind == KindIncome {
		return t.Income.CategoryName
	}
	return "Expense"
}

func (t Transaction) Note() string {
	if t.Kind == KindIncome {
		return t.Income.Note
	}
	return ""
}

func (t Transaction) CreatedAt() time.Time {
	if t.Kind == KindIncome {
		return t.Income.CreatedAt
	}
	return t.Expense.CreatedAt
}

func (t Transaction) UpdatedAt() time.Time {
	if t.Kind == KindIncome {
		return t.Income.UpdatedAt
	}
	return t.Expense.UpdatedAt
}

// SortTransactions orders by date descending, created_at descending on
// ties. This ordering is the listing contract, not a display choice.
func SortTransactions(ts []Transaction) {
	sort.SliceStable(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if !a.Date().Equal(b.Date().Time) {
			return a.Date().After(b.Date())
		}
		return a.CreatedAt().After(b.CreatedAt())
	})
}

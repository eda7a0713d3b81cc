// Package storage owns every persisted record. All mutations are atomic
// with respect to a single record, and every committed change is visible
// to the next aggregate query exactly once.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wallet/internal/core"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// Repository is the SQLite-backed entity store for categories, incomes
// and expenses.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath, runs pending
// migrations and returns a ready Repository.
func Open(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := applyMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("Schema ready", "path", dbPath, "version", version)

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseStoredDate(s string) (core.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return core.Date{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return core.Date{Time: t}, nil
}

// --- categories ---

// GetOrCreateCategory returns the category named name, creating it when
// absent. Names are unique; a concurrent insert loses the race and falls
// back to the existing row.
func (r *Repository) GetOrCreateCategory(ctx context.Context, name string) (core.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Category{}, &core.ValidationError{Field: "category", Reason: "Category name cannot be empty", Err: core.ErrInvalidText}
	}

	if c, err := r.categoryByName(ctx, name); err == nil {
		return c, nil
	} else if !errors.Is(err, core.ErrCategoryNotFound) {
		return core.Category{}, err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, created_at) VALUES (?, ?)`,
		name, formatTime(now))
	if err != nil {
		// Unique violation from a concurrent create: the row exists now.
		if c, selErr := r.categoryByName(ctx, name); selErr == nil {
			return c, nil
		}
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("category insert id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", id, "name", name)
	return core.Category{ID: id, Name: name, CreatedAt: now}, nil
}

func (r *Repository) categoryByName(ctx context.Context, name string) (core.Category, error) {
	var (
		c       core.Category
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE name = ?`, name).
		Scan(&c.ID, &c.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, core.ErrCategoryNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category by name: %w", err)
	}
	if c.CreatedAt, err = parseStoredTime(created); err != nil {
		return core.Category{}, err
	}
	return c, nil
}

// GetCategory returns the category with the given id.
func (r *Repository) GetCategory(ctx context.Context, id int64) (core.Category, error) {
	var (
		c       core.Category
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, core.ErrCategoryNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	if c.CreatedAt, err = parseStoredTime(created); err != nil {
		return core.Category{}, err
	}
	return c, nil
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var (
			c       core.Category
			created string
		)
		if err := rows.Scan(&c.ID, &c.Name, &created); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if c.CreatedAt, err = parseStoredTime(created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// --- incomes ---

const incomeColumns = `i.id, i.category_id, c.name, i.source, i.amount_cents, i.date, i.note, i.created_at, i.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncome(row rowScanner) (core.Income, error) {
	var (
		inc              core.Income
		date             string
		created, updated string
	)
	err := row.Scan(&inc.ID, &inc.CategoryID, &inc.CategoryName, &inc.Source,
		&inc.Amount.Cents, &date, &inc.Note, &created, &updated)
	if err != nil {
		return core.Income{}, err
	}
	if inc.Date, err = parseStoredDate(date); err != nil {
		return core.Income{}, err
	}
	if inc.CreatedAt, err = parseStoredTime(created); err != nil {
		return core.Income{}, err
	}
	if inc.UpdatedAt, err = parseStoredTime(updated); err != nil {
		return core.Income{}, err
	}
	return inc, nil
}

// CreateIncome validates and inserts a new income. The category must
// exist; the check and the insert share one transaction so the foreign
// key cannot be orphaned by a concurrent delete.
func (r *Repository) CreateIncome(ctx context.Context, inc core.Income) (core.Income, error) {
	if err := inc.Validate(); err != nil {
		return core.Income{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Income{}, fmt.Errorf("begin create income: %w", err)
	}
	defer tx.Rollback()

	var catName string
	err = tx.QueryRowContext(ctx, `SELECT name FROM categories WHERE id = ?`, inc.CategoryID).Scan(&catName)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Income{}, core.ErrCategoryNotFound
	}
	if err != nil {
		return core.Income{}, fmt.Errorf("check income category: %w", err)
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO incomes (category_id, source, amount_cents, date, note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inc.CategoryID, inc.Source, inc.Amount.Cents, inc.Date.String(), inc.Note,
		formatTime(now), formatTime(now))
	if err != nil {
		return core.Income{}, fmt.Errorf("insert income: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Income{}, fmt.Errorf("income insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return core.Income{}, fmt.Errorf("commit create income: %w", err)
	}

	inc.ID = id
	inc.CategoryName = catName
	inc.CreatedAt = now
	inc.UpdatedAt = now

	slog.InfoContext(ctx, "Income created",
		"id", inc.ID, "source", inc.Source, "amount_cents", inc.Amount.Cents, "category", catName)
	return inc, nil
}

// GetIncome returns the income with the given id.
func (r *Repository) GetIncome(ctx context.Context, id int64) (core.Income, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes i JOIN categories c ON c.id = i.category_id WHERE i.id = ?`, id)
	inc, err := scanIncome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Income{}, core.ErrNotFound
	}
	if err != nil {
		return core.Income{}, fmt.Errorf("get income: %w", err)
	}
	return inc, nil
}

// UpdateIncome applies only the supplied patch fields, validates the
// merged record and refreshes updated_at. id and created_at are
// preserved. The read-merge-write runs in one transaction so a reader
// never observes a half-applied patch.
func (r *Repository) UpdateIncome(ctx context.Context, id int64, patch core.IncomePatch) (core.Income, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Income{}, fmt.Errorf("begin update income: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes i JOIN categories c ON c.id = i.category_id WHERE i.id = ?`, id)
	inc, err := scanIncome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Income{}, core.ErrNotFound
	}
	if err != nil {
		return core.Income{}, fmt.Errorf("load income for update: %w", err)
	}

	if patch.CategoryID != nil {
		var catName string
		err = tx.QueryRowContext(ctx, `SELECT name FROM categories WHERE id = ?`, *patch.CategoryID).Scan(&catName)
		if errors.Is(err, sql.ErrNoRows) {
			return core.Income{}, core.ErrCategoryNotFound
		}
		if err != nil {
			return core.Income{}, fmt.Errorf("check patched category: %w", err)
		}
		inc.CategoryID = *patch.CategoryID
		inc.CategoryName = catName
	}
	if patch.Source != nil {
		inc.Source = *patch.Source
	}
	if patch.Amount != nil {
		inc.Amount = *patch.Amount
	}
	if patch.Date != nil {
		inc.Date = *patch.Date
	}
	if patch.Note != nil {
		inc.Note = *patch.Note
	}

	if err := inc.Validate(); err != nil {
		return core.Income{}, err
	}

	inc.UpdatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE incomes SET category_id = ?, source = ?, amount_cents = ?, date = ?, note = ?, updated_at = ? WHERE id = ?`,
		inc.CategoryID, inc.Source, inc.Amount.Cents, inc.Date.String(), inc.Note,
		formatTime(inc.UpdatedAt), id)
	if err != nil {
		return core.Income{}, fmt.Errorf("update income: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return core.Income{}, fmt.Errorf("commit update income: %w", err)
	}

	slog.InfoContext(ctx, "Income updated", "id", id, "amount_cents", inc.Amount.Cents)
	return inc, nil
}

// DeleteIncome removes the income with the given id, failing with
// ErrNotFound when absent.
func (r *Repository) DeleteIncome(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete income rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Income deleted", "id", id)
	return nil
}

// PurgeIncomes deletes the given ids as a bulk cleanup; missing ids are
// silently skipped, unlike the single-record DeleteIncome.
func (r *Repository) PurgeIncomes(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("purge incomes: %w", err)
	}
	return nil
}

func incomeFilterSQL(f core.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		q := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, `(LOWER(i.source) LIKE ? OR LOWER(i.note) LIKE ? OR LOWER(c.name) LIKE ?)`)
		args = append(args, q, q, q)
	}
	if f.Category != "" {
		conds = append(conds, `c.name = ?`)
		args = append(args, f.Category)
	}
	if f.DateFrom != nil {
		conds = append(conds, `i.date >= ?`)
		args = append(args, f.DateFrom.String())
	}
	if f.DateTo != nil {
		conds = append(conds, `i.date <= ?`)
		args = append(args, f.DateTo.String())
	}
	if f.AmountMin != nil {
		conds = append(conds, `i.amount_cents >= ?`)
		args = append(args, f.AmountMin.Cents)
	}
	if f.AmountMax != nil {
		conds = append(conds, `i.amount_cents <= ?`)
		args = append(args, f.AmountMax.Cents)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListIncomes returns incomes matching the filter, ordered by date
// descending with created_at (then id) breaking ties.
func (r *Repository) ListIncomes(ctx context.Context, f core.Filter, p core.Page) ([]core.Income, error) {
	where, args := incomeFilterSQL(f)
	q := `SELECT ` + incomeColumns + ` FROM incomes i JOIN categories c ON c.id = i.category_id` +
		where + ` ORDER BY i.date DESC, i.created_at DESC, i.id DESC`
	if p.Limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, p.Limit, p.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	var out []core.Income
	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}

// SumIncomes returns the exact cent total of incomes matching the filter.
func (r *Repository) SumIncomes(ctx context.Context, f core.Filter) (core.Money, error) {
	where, args := incomeFilterSQL(f)
	var cents int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(i.amount_cents), 0) FROM incomes i JOIN categories c ON c.id = i.category_id`+where,
		args...).Scan(&cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum incomes: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

// CountIncomes returns the number of incomes matching the filter.
func (r *Repository) CountIncomes(ctx context.Context, f core.Filter) (int, error) {
	where, args := incomeFilterSQL(f)
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM incomes i JOIN categories c ON c.id = i.category_id`+where,
		args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count incomes: %w", err)
	}
	return n, nil
}

// --- expenses ---

const expenseColumns = `id, title, amount_cents, date, created_at, updated_at`

func scanExpense(row rowScanner) (core.Expense, error) {
	var (
		exp              core.Expense
		date             string
		created, updated string
	)
	err := row.Scan(&exp.ID, &exp.Title, &exp.Amount.Cents, &date, &created, &updated)
	if err != nil {
		return core.Expense{}, err
	}
	if exp.Date, err = parseStoredDate(date); err != nil {
		return core.Expense{}, err
	}
	if exp.CreatedAt, err = parseStoredTime(created); err != nil {
		return core.Expense{}, err
	}
	if exp.UpdatedAt, err = parseStoredTime(updated); err != nil {
		return core.Expense{}, err
	}
	return exp, nil
}

// CreateExpense validates and inserts a new expense.
func (r *Repository) CreateExpense(ctx context.Context, exp core.Expense) (core.Expense, error) {
	if err := exp.Validate(); err != nil {
		return core.Expense{}, err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (title, amount_cents, date, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		exp.Title, exp.Amount.Cents, exp.Date.String(), formatTime(now), formatTime(now))
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense insert id: %w", err)
	}

	exp.ID = id
	exp.CreatedAt = now
	exp.UpdatedAt = now

	slog.InfoContext(ctx, "Expense created",
		"id", exp.ID, "title", exp.Title, "amount_cents", exp.Amount.Cents)
	return exp, nil
}

// GetExpense returns the expense with the given id.
func (r *Repository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	exp, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return exp, nil
}

// UpdateExpense mirrors UpdateIncome for expenses.
func (r *Repository) UpdateExpense(ctx context.Context, id int64, patch core.ExpensePatch) (core.Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Expense{}, fmt.Errorf("begin update expense: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	exp, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("load expense for update: %w", err)
	}

	if patch.Title != nil {
		exp.Title = *patch.Title
	}
	if patch.Amount != nil {
		exp.Amount = *patch.Amount
	}
	if patch.Date != nil {
		exp.Date = *patch.Date
	}

	if err := exp.Validate(); err != nil {
		return core.Expense{}, err
	}

	exp.UpdatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE expenses SET title = ?, amount_cents = ?, date = ?, updated_at = ? WHERE id = ?`,
		exp.Title, exp.Amount.Cents, exp.Date.String(), formatTime(exp.UpdatedAt), id)
	if err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return core.Expense{}, fmt.Errorf("commit update expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense updated", "id", id, "amount_cents", exp.Amount.Cents)
	return exp, nil
}

// DeleteExpense removes the expense with the given id, failing with
// ErrNotFound when absent.
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// PurgeExpenses deletes the given ids as a bulk cleanup; missing ids
// are silently skipped.
func (r *Repository) PurgeExpenses(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("purge expenses: %w", err)
	}
	return nil
}

func expenseFilterSQL(f core.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, `LOWER(title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.DateFrom != nil {
		conds = append(conds, `date >= ?`)
		args = append(args, f.DateFrom.String())
	}
	if f.DateTo != nil {
		conds = append(conds, `date <= ?`)
		args = append(args, f.DateTo.String())
	}
	if f.AmountMin != nil {
		conds = append(conds, `amount_cents >= ?`)
		args = append(args, f.AmountMin.Cents)
	}
	if f.AmountMax != nil {
		conds = append(conds, `amount_cents <= ?`)
		args = append(args, f.AmountMax.Cents)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListExpenses returns expenses matching the filter in the same order
// contract as ListIncomes.
func (r *Repository) ListExpenses(ctx context.Context, f core.Filter, p core.Page) ([]core.Expense, error) {
	where, args := expenseFilterSQL(f)
	q := `SELECT ` + expenseColumns + ` FROM expenses` + where +
		` ORDER BY date DESC, created_at DESC, id DESC`
	if p.Limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, p.Limit, p.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

// SumExpenses returns the exact cent total of expenses matching the filter.
func (r *Repository) SumExpenses(ctx context.Context, f core.Filter) (core.Money, error) {
	where, args := expenseFilterSQL(f)
	var cents int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM expenses`+where, args...).Scan(&cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum expenses: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

// CountExpenses returns the number of expenses matching the filter.
func (r *Repository) CountExpenses(ctx context.Context, f core.Filter) (int, error) {
	where, args := expenseFilterSQL(f)
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count expenses: %w", err)
	}
	return n, nil
}

// --- aggregates ---

// Totals returns total income and total expenses from a single
// statement, so the pair is consistent even under concurrent writes.
func (r *Repository) Totals(ctx context.Context) (income, expenses core.Money, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT (SELECT COALESCE(SUM(amount_cents), 0) FROM incomes),
		        (SELECT COALESCE(SUM(amount_cents), 0) FROM expenses)`).
		Scan(&income.Cents, &expenses.Cents)
	if err != nil {
		return core.Money{}, core.Money{}, fmt.Errorf("totals: %w", err)
	}
	return income, expenses, nil
}

// Package services orchestrates the entity store and the event broker.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wallet/internal/amqp"
	"wallet/internal/core"
	"wallet/internal/storage"
)

// DefaultCategory is assigned when a generic transaction create names no
// category of its own.
const DefaultCategory = "Salary"

// TrackerService owns income and expense mutations. Every committed
// change publishes an entity event; publish failures are logged and
// never fail the request, the record is already saved locally.
type TrackerService struct {
	storage    *storage.Repository
	amqpClient *amqp.Client
}

func NewTrackerService(storage *storage.Repository, amqpClient *amqp.Client) *TrackerService {
	return &TrackerService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Categories returns all categories ordered by name.
func (s *TrackerService) Categories(ctx context.Context) ([]core.Category, error) {
	return s.storage.ListCategories(ctx)
}

// GetOrCreateCategory resolves a category by name, creating it on first use.
func (s *TrackerService) GetOrCreateCategory(ctx context.Context, name string) (core.Category, error) {
	return s.storage.GetOrCreateCategory(ctx, name)
}

// CreateIncome normalizes, validates and saves a new income.
func (s *TrackerService) CreateIncome(ctx context.Context, inc core.Income) (core.Income, error) {
	source, err := core.NormalizeText("source", inc.Source)
	if err != nil {
		return core.Income{}, err
	}
	note, err := core.NormalizeNote(inc.Note)
	if err != nil {
		return core.Income{}, err
	}
	inc.Source = source
	inc.Note = note

	created, err := s.storage.CreateIncome(ctx, inc)
	if err != nil {
		return core.Income{}, fmt.Errorf("save income: %w", err)
	}

	s.publishEvent(ctx, core.KindIncome, amqp.ActionCreated, created.ID)
	return created, nil
}

// GetIncome returns a single income by id.
func (s *TrackerService) GetIncome(ctx context.Context, id int64) (core.Income, error) {
	return s.storage.GetIncome(ctx, id)
}

// ListIncomes returns incomes matching the filter.
func (s *TrackerService) ListIncomes(ctx context.Context, f core.Filter, p core.Page) ([]core.Income, error) {
	return s.storage.ListIncomes(ctx, f, p)
}

// SumIncomes returns the total of incomes matching the filter.
func (s *TrackerService) SumIncomes(ctx context.Context, f core.Filter) (core.Money, error) {
	return s.storage.SumIncomes(ctx, f)
}

// UpdateIncome applies a partial update to an income.
func (s *TrackerService) UpdateIncome(ctx context.Context, id int64, patch core.IncomePatch) (core.Income, error) {
	if patch.Source != nil {
		source, err := core.NormalizeText("source", *patch.Source)
		if err != nil {
			return core.Income{}, err
		}
		patch.Source = &source
	}
	if patch.Note != nil {
		note, err := core.NormalizeNote(*patch.Note)
		if err != nil {
			return core.Income{}, err
		}
		patch.Note = &note
	}

	updated, err := s.storage.UpdateIncome(ctx, id, patch)
	if err != nil {
		return core.Income{}, err
	}

	s.publishEvent(ctx, core.KindIncome, amqp.ActionUpdated, id)
	return updated, nil
}

// DeleteIncome removes an income by id.
func (s *TrackerService) DeleteIncome(ctx context.Context, id int64) error {
	if err := s.storage.DeleteIncome(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, core.KindIncome, amqp.ActionDeleted, id)
	return nil
}

// CreateExpense normalizes, validates and saves a new expense.
func (s *TrackerService) CreateExpense(ctx context.Context, exp core.Expense) (core.Expense, error) {
	title, err := core.NormalizeText("title", exp.Title)
	if err != nil {
		return core.Expense{}, err
	}
	exp.Title = title

	created, err := s.storage.CreateExpense(ctx, exp)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	s.publishEvent(ctx, core.KindExpense, amqp.ActionCreated, created.ID)
	return created, nil
}

// GetExpense returns a single expense by id.
func (s *TrackerService) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	return s.storage.GetExpense(ctx, id)
}

// ListExpenses returns expenses matching the filter.
func (s *TrackerService) ListExpenses(ctx context.Context, f core.Filter, p core.Page) ([]core.Expense, error) {
	return s.storage.ListExpenses(ctx, f, p)
}

// SumExpenses returns the total of expenses matching the filter.
func (s *TrackerService) SumExpenses(ctx context.Context, f core.Filter) (core.Money, error) {
	return s.storage.SumExpenses(ctx, f)
}

// UpdateExpense applies a partial update to an expense.
func (s *TrackerService) UpdateExpense(ctx context.Context, id int64, patch core.ExpensePatch) (core.Expense, error) {
	if patch.Title != nil {
		title, err := core.NormalizeText("title", *patch.Title)
		if err != nil {
			return core.Expense{}, err
		}
		patch.Title = &title
	}

	updated, err := s.storage.UpdateExpense(ctx, id, patch)
	if err != nil {
		return core.Expense{}, err
	}

	s.publishEvent(ctx, core.KindExpense, amqp.ActionUpdated, id)
	return updated, nil
}

// DeleteExpense removes an expense by id.
func (s *TrackerService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.storage.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, core.KindExpense, amqp.ActionDeleted, id)
	return nil
}

// CreateTransaction creates an income or an expense from the generic
// transaction payload. Incomes resolve their category by name, falling
// back to DefaultCategory when none is given.
func (s *TrackerService) CreateTransaction(ctx context.Context, kind core.TransactionKind, title string, amount core.Money, date core.Date, category, note string) (core.Transaction, error) {
	switch kind {
	case core.KindIncome:
		if category == "" {
			category = DefaultCategory
		}
		cat, err := s.storage.GetOrCreateCategory(ctx, category)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("resolve category: %w", err)
		}
		inc, err := s.CreateIncome(ctx, core.Income{
			CategoryID: cat.ID,
			Source:     title,
			Amount:     amount,
			Date:       date,
			Note:       note,
		})
		if err != nil {
			return core.Transaction{}, err
		}
		return core.IncomeTransaction(inc), nil

	case core.KindExpense:
		exp, err := s.CreateExpense(ctx, core.Expense{
			Title:  title,
			Amount: amount,
			Date:   date,
		})
		if err != nil {
			return core.Transaction{}, err
		}
		return core.ExpenseTransaction(exp), nil

	default:
		return core.Transaction{}, &core.ValidationError{
			Field:  "type",
			Reason: "Type must be either income or expense",
			Err:    core.ErrInvalidText,
		}
	}
}

// LookupTransaction resolves a shared-id reference by probing incomes
// first, then expenses. An id held by both resolves to the income.
func (s *TrackerService) LookupTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	inc, err := s.storage.GetIncome(ctx, id)
	if err == nil {
		return core.IncomeTransaction(inc), nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return core.Transaction{}, err
	}

	exp, err := s.storage.GetExpense(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.ExpenseTransaction(exp), nil
}

// TransactionPatch carries the fields a generic transaction update may
// change. Title maps to income source or expense title depending on
// what the id resolves to.
type TransactionPatch struct {
	Title  *string
	Amount *core.Money
	Date   *core.Date
}

// UpdateTransaction resolves the id and applies the patch to whichever
// record kind it names.
func (s *TrackerService) UpdateTransaction(ctx context.Context, id int64, patch TransactionPatch) (core.Transaction, error) {
	t, err := s.LookupTransaction(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}

	switch t.Kind {
	case core.KindIncome:
		inc, err := s.UpdateIncome(ctx, id, core.IncomePatch{
			Source: patch.Title,
			Amount: patch.Amount,
			Date:   patch.Date,
		})
		if err != nil {
			return core.Transaction{}, err
		}
		return core.IncomeTransaction(inc), nil
	default:
		exp, err := s.UpdateExpense(ctx, id, core.ExpensePatch{
			Title:  patch.Title,
			Amount: patch.Amount,
			Date:   patch.Date,
		})
		if err != nil {
			return core.Transaction{}, err
		}
		return core.ExpenseTransaction(exp), nil
	}
}

// DeleteTransaction resolves the id and deletes the record it names.
func (s *TrackerService) DeleteTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	t, err := s.LookupTransaction(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}

	if t.Kind == core.KindIncome {
		err = s.DeleteIncome(ctx, id)
	} else {
		err = s.DeleteExpense(ctx, id)
	}
	if err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (s *TrackerService) publishEvent(ctx context.Context, kind core.TransactionKind, action string, id int64) {
	if err := s.amqpClient.PublishEntityEvent(ctx, kind, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entity event",
			"kind", kind, "action", action, "id", id, "error", err)
	}
}

// Close closes both storage and AMQP connections
func (s *TrackerService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close tracker service: %v", errs)
	}

	return nil
}

package http

import (
	"net/http"
	"strings"

	"wallet/internal/core"
)

const expenseNotFound = "Expense transaction not found"

// handleExpenseAPI routes /api/expense/ and /api/expense/{id}/, plus the
// /api/expenses/ alias.
func (s *Server) handleExpenseAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/expense/")
	rest = strings.TrimPrefix(rest, "/api/expenses/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			s.listExpenses(w, r)
		case http.MethodPost:
			s.createExpense(w, r)
		default:
			writeMethodNotAllowed(w, "GET, POST")
		}
		return
	}

	id, ok := pathID(rest)
	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getExpense(w, r, id)
	case http.MethodPut:
		s.updateExpense(w, r, id)
	case http.MethodDelete:
		s.deleteExpense(w, r, id)
	default:
		writeMethodNotAllowed(w, "GET, PUT, DELETE")
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f := core.FilterFromQuery(r.URL.Query())

	expenses, err := s.tracker.ListExpenses(ctx, f, core.All)
	if err != nil {
		respondError(ctx, w, err, expenseNotFound, "Failed to load expense transactions")
		return
	}
	total, err := s.tracker.SumExpenses(ctx, f)
	if err != nil {
		respondError(ctx, w, err, expenseNotFound, "Failed to load expense transactions")
		return
	}

	items := make([]envelope, 0, len(expenses))
	for _, exp := range expenses {
		items = append(items, expenseData(exp))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"transactions": items,
		"stats": envelope{
			"total": total.Dollars(),
			"count": len(expenses),
		},
	})
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	for _, field := range []string{"title", "amount", "date"} {
		if p.Get(field) == "" {
			writeError(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to create expense transaction")
		return
	}
	date, err := core.ParseDate(p.Get("date"))
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to create expense transaction")
		return
	}

	exp, err := s.tracker.CreateExpense(r.Context(), core.Expense{
		Title:  p.Get("title"),
		Amount: amount,
		Date:   date,
	})
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to create expense transaction")
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "Expense transaction created successfully",
		"data":    expenseCreatedData(exp),
	})
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request, id int64) {
	exp, err := s.tracker.GetExpense(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to load expense transaction")
		return
	}
	writeSuccess(w, http.StatusOK, envelope{"data": expenseData(exp)})
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request, id int64) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	var patch core.ExpensePatch

	if p.Has("title") {
		title := p.Get("title")
		if title == "" {
			writeError(w, http.StatusBadRequest, "Title cannot be empty")
			return
		}
		patch.Title = &title
	}
	if p.Has("amount") {
		amount, err := core.ParseAmount(p.Get("amount"))
		if err != nil {
			respondError(r.Context(), w, err, expenseNotFound, "Failed to update expense transaction")
			return
		}
		patch.Amount = &amount
	}
	if p.Has("date") {
		date, err := core.ParseDate(p.Get("date"))
		if err != nil {
			respondError(r.Context(), w, err, expenseNotFound, "Failed to update expense transaction")
			return
		}
		patch.Date = &date
	}

	exp, err := s.tracker.UpdateExpense(r.Context(), id, patch)
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to update expense transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Expense transaction updated successfully",
		"data":    expenseData(exp),
	})
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request, id int64) {
	exp, err := s.tracker.GetExpense(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to delete expense transaction")
		return
	}
	if err := s.tracker.DeleteExpense(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to delete expense transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Expense transaction deleted successfully",
		"data": envelope{
			"id":     exp.ID,
			"title":  exp.Title,
			"amount": exp.Amount.Dollars(),
		},
	})
}

package http

import (
	"net/http"
	"strconv"

	"wallet/internal/core"
	"wallet/internal/services"
)

const transactionNotFound = "Transaction not found"

// handleTransactionsAPI serves the combined endpoint: merged listings
// and kind-dispatched mutations addressed by shared id.
func (s *Server) handleTransactionsAPI(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/transactions/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	case http.MethodPut:
		s.updateTransaction(w, r)
	case http.MethodDelete:
		s.deleteTransaction(w, r)
	default:
		writeMethodNotAllowed(w, "GET, POST, PUT, DELETE")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f := core.FilterFromQuery(r.URL.Query())

	list, err := s.summary.ListTransactions(ctx, f)
	if err != nil {
		respondError(ctx, w, err, transactionNotFound, "Failed to load transactions")
		return
	}
	income, expenses, balance, err := s.summary.Totals(ctx)
	if err != nil {
		respondError(ctx, w, err, transactionNotFound, "Failed to load transactions")
		return
	}

	items := make([]envelope, 0, len(list))
	for _, t := range list {
		items = append(items, transactionListItem(t))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"transactions": items,
		"stats": envelope{
			"totalIncome":       income.Dollars(),
			"totalExpenses":     expenses.Dollars(),
			"currentBalance":    balance.Dollars(),
			"totalTransactions": len(list),
		},
	})
}

// createTransaction accepts the generic payload: a type, an amount and a
// description. The date defaults to today and incomes fall back to the
// default category.
func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	kind := core.TransactionKind(p.Get("type"))
	if kind != core.KindIncome && kind != core.KindExpense {
		writeError(w, http.StatusBadRequest, `Invalid or missing transaction type. Must be "income" or "expense"`)
		return
	}
	if p.Get("description") == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: description")
		return
	}
	if p.Get("amount") == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: amount")
		return
	}
	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		respondError(r.Context(), w, err, transactionNotFound, "Failed to create transaction")
		return
	}

	date := core.Today()
	if v := p.Get("date"); v != "" {
		date, err = core.ParseDate(v)
		if err != nil {
			respondError(r.Context(), w, err, transactionNotFound, "Failed to create transaction")
			return
		}
	}

	t, err := s.tracker.CreateTransaction(r.Context(), kind, p.Get("description"), amount, date, p.Get("category"), p.Get("note"))
	if err != nil {
		respondError(r.Context(), w, err, transactionNotFound, "Failed to create transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Transaction created successfully",
		"data": envelope{
			"id":         t.ID(),
			"type":       string(t.Kind),
			"title":      t.Title(),
			"amount":     t.Amount().Dollars(),
			"date":       t.Date().String(),
			"created_at": formatTimestamp(t.CreatedAt()),
		},
	})
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	id, err := strconv.ParseInt(p.Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Missing required field: id")
		return
	}

	var patch services.TransactionPatch
	if p.Has("description") {
		title := p.Get("description")
		if title == "" {
			writeError(w, http.StatusBadRequest, "Description cannot be empty")
			return
		}
		patch.Title = &title
	}
	if p.Has("amount") {
		amount, err := core.ParseAmount(p.Get("amount"))
		if err != nil {
			respondError(r.Context(), w, err, transactionNotFound, "Failed to update transaction")
			return
		}
		patch.Amount = &amount
	}
	if p.Has("date") {
		date, err := core.ParseDate(p.Get("date"))
		if err != nil {
			respondError(r.Context(), w, err, transactionNotFound, "Failed to update transaction")
			return
		}
		patch.Date = &date
	}

	t, err := s.tracker.UpdateTransaction(r.Context(), id, patch)
	if err != nil {
		respondError(r.Context(), w, err, transactionNotFound, "Failed to update transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Transaction updated successfully",
		"data": envelope{
			"id":         t.ID(),
			"type":       string(t.Kind),
			"title":      t.Title(),
			"amount":     t.Amount().Dollars(),
			"updated_at": formatTimestamp(t.UpdatedAt()),
		},
	})
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	id, err := strconv.ParseInt(p.Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Missing required field: id")
		return
	}

	t, err := s.tracker.DeleteTransaction(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, transactionNotFound, "Failed to delete transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Transaction deleted successfully",
		"data": envelope{
			"id":     t.ID(),
			"type":   string(t.Kind),
			"title":  t.Title(),
			"amount": t.Amount().Dollars(),
		},
	})
}

// handleCategoriesAPI lists categories for the income form.
func (s *Server) handleCategoriesAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "GET")
		return
	}

	categories, err := s.tracker.Categories(r.Context())
	if err != nil {
		respondError(r.Context(), w, err, "", "Failed to load categories")
		return
	}

	items := make([]envelope, 0, len(categories))
	for _, cat := range categories {
		items = append(items, categoryData(cat))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"data": envelope{
			"categories": items,
			"count":      len(items),
		},
	})
}

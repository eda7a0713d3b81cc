package http

import (
	"net/http"
	"strconv"
	"strings"

	"wallet/internal/core"
)

const incomeNotFound = "Income transaction not found"

// handleIncomeAPI routes /api/income/ and /api/income/{id}/.
func (s *Server) handleIncomeAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/income/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			s.listIncomes(w, r)
		case http.MethodPost:
			s.createIncome(w, r)
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
		s.getIncome(w, r, id)
	case http.MethodPut:
		s.updateIncome(w, r, id)
	case http.MethodDelete:
		s.deleteIncome(w, r, id)
	default:
		writeMethodNotAllowed(w, "GET, PUT, DELETE")
	}
}

func (s *Server) listIncomes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f := core.FilterFromQuery(r.URL.Query())

	incomes, err := s.tracker.ListIncomes(ctx, f, core.All)
	if err != nil {
		respondError(ctx, w, err, incomeNotFound, "Failed to load income transactions")
		return
	}
	total, err := s.tracker.SumIncomes(ctx, f)
	if err != nil {
		respondError(ctx, w, err, incomeNotFound, "Failed to load income transactions")
		return
	}

	items := make([]envelope, 0, len(incomes))
	for _, inc := range incomes {
		items = append(items, incomeData(inc))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"transactions": items,
		"stats": envelope{
			"total": total.Dollars(),
			"count": len(incomes),
		},
	})
}

func (s *Server) createIncome(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	for _, field := range []string{"category_id", "source", "amount", "date"} {
		if p.Get(field) == "" {
			writeError(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	categoryID, err := strconv.ParseInt(p.Get("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to create income transaction")
		return
	}
	date, err := core.ParseDate(p.Get("date"))
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to create income transaction")
		return
	}

	inc, err := s.tracker.CreateIncome(r.Context(), core.Income{
		CategoryID: categoryID,
		Source:     p.Get("source"),
		Amount:     amount,
		Date:       date,
		Note:       p.Get("note"),
	})
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to create income transaction")
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "Income transaction created successfully",
		"data":    incomeCreatedData(inc),
	})
}

func (s *Server) getIncome(w http.ResponseWriter, r *http.Request, id int64) {
	inc, err := s.tracker.GetIncome(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to load income transaction")
		return
	}
	writeSuccess(w, http.StatusOK, envelope{"data": incomeData(inc)})
}

// updateIncome applies a partial update. Only fields present in the
// payload change; an explicitly empty source is rejected rather than
// treated as absent.
func (s *Server) updateIncome(w http.ResponseWriter, r *http.Request, id int64) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	var patch core.IncomePatch

	if p.Has("category_id") {
		categoryID, err := strconv.ParseInt(p.Get("category_id"), 10, 64)
		if err != nil || categoryID <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		patch.CategoryID = &categoryID
	}
	if p.Has("source") {
		source := p.Get("source")
		if source == "" {
			writeError(w, http.StatusBadRequest, "Source cannot be empty")
			return
		}
		patch.Source = &source
	}
	if p.Has("amount") {
		amount, err := core.ParseAmount(p.Get("amount"))
		if err != nil {
			respondError(r.Context(), w, err, incomeNotFound, "Failed to update income transaction")
			return
		}
		patch.Amount = &amount
	}
	if p.Has("date") {
		date, err := core.ParseDate(p.Get("date"))
		if err != nil {
			respondError(r.Context(), w, err, incomeNotFound, "Failed to update income transaction")
			return
		}
		patch.Date = &date
	}
	if p.Has("note") {
		note := p.Get("note")
		patch.Note = &note
	}

	inc, err := s.tracker.UpdateIncome(r.Context(), id, patch)
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to update income transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Income transaction updated successfully",
		"data":    incomeData(inc),
	})
}

func (s *Server) deleteIncome(w http.ResponseWriter, r *http.Request, id int64) {
	inc, err := s.tracker.GetIncome(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to delete income transaction")
		return
	}
	if err := s.tracker.DeleteIncome(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to delete income transaction")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Income transaction deleted successfully",
		"data": envelope{
			"id":     inc.ID,
			"source": inc.Source,
			"amount": inc.Amount.Dollars(),
		},
	})
}

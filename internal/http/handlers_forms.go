package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"wallet/internal/core"
)

// The form endpoints back the browser flows: create and edit submit the
// whole record, failures return the per-field error map with 422, and
// success redirects back to the listing.

func writeFormErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, envelope{
		"status":  "error",
		"message": "Validation failed",
		"errors":  fieldErrors,
	})
}

func redirectTo(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// handleIncomeForms routes /income/, /income/add/, /income/{id}/edit/
// and /income/{id}/delete/.
func (s *Server) handleIncomeForms(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/income/"), "/")
	if rest == "" {
		if r.Method != http.MethodGet {
			writeMethodNotAllowed(w, "GET")
			return
		}
		s.listIncomes(w, r)
		return
	}
	if rest == "add" {
		if r.Method != http.MethodPost {
			writeMethodNotAllowed(w, "POST")
			return
		}
		s.incomeFormAdd(w, r)
		return
	}

	segs := strings.Split(rest, "/")
	if len(segs) != 2 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	id, err := strconv.ParseInt(segs[0], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	switch segs[1] {
	case "edit":
		switch r.Method {
		case http.MethodGet:
			s.getIncome(w, r, id)
		case http.MethodPost:
			s.incomeFormEdit(w, r, id)
		default:
			writeMethodNotAllowed(w, "GET, POST")
		}
	case "delete":
		switch r.Method {
		case http.MethodGet:
			s.getIncome(w, r, id)
		case http.MethodPost:
			s.incomeFormDelete(w, r, id)
		default:
			writeMethodNotAllowed(w, "GET, POST")
		}
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// parseIncomeForm validates the full income form, collecting an error
// per field instead of stopping at the first.
func parseIncomeForm(p *RequestBodyParser) (core.Income, map[string]string) {
	fieldErrors := make(map[string]string)
	var inc core.Income

	categoryID, err := strconv.ParseInt(p.Get("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		fieldErrors["category_id"] = "Category is required"
	} else {
		inc.CategoryID = categoryID
	}

	source, err := core.NormalizeText("source", p.Get("source"))
	if err != nil {
		fieldErrors["source"] = validationReason(err)
	} else {
		inc.Source = source
	}

	if v := p.Get("amount"); v == "" {
		fieldErrors["amount"] = "Amount is required"
	} else if amount, err := core.ParseAmount(v); err != nil {
		fieldErrors["amount"] = validationReason(err)
	} else {
		inc.Amount = amount
	}

	if v := p.Get("date"); v == "" {
		fieldErrors["date"] = "Date is required"
	} else if date, err := core.ParseDate(v); err != nil {
		fieldErrors["date"] = validationReason(err)
	} else {
		inc.Date = date
	}

	note, err := core.NormalizeNote(p.Get("note"))
	if err != nil {
		fieldErrors["note"] = validationReason(err)
	} else {
		inc.Note = note
	}

	return inc, fieldErrors
}

func validationReason(err error) string {
	if ve, ok := core.AsValidation(err); ok {
		return ve.Reason
	}
	return err.Error()
}

func (s *Server) incomeFormAdd(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	inc, fieldErrors := parseIncomeForm(p)
	if len(fieldErrors) > 0 {
		writeFormErrors(w, fieldErrors)
		return
	}

	if _, err := s.tracker.CreateIncome(r.Context(), inc); err != nil {
		if errors.Is(err, core.ErrCategoryNotFound) {
			writeFormErrors(w, map[string]string{"category_id": "Invalid category ID"})
			return
		}
		respondError(r.Context(), w, err, incomeNotFound, "Failed to create income transaction")
		return
	}

	redirectTo(w, r, "/income/")
}

func (s *Server) incomeFormEdit(w http.ResponseWriter, r *http.Request, id int64) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	inc, fieldErrors := parseIncomeForm(p)
	if len(fieldErrors) > 0 {
		writeFormErrors(w, fieldErrors)
		return
	}

	patch := core.IncomePatch{
		CategoryID: &inc.CategoryID,
		Source:     &inc.Source,
		Amount:     &inc.Amount,
		Date:       &inc.Date,
		Note:       &inc.Note,
	}
	if _, err := s.tracker.UpdateIncome(r.Context(), id, patch); err != nil {
		if errors.Is(err, core.ErrCategoryNotFound) {
			writeFormErrors(w, map[string]string{"category_id": "Invalid category ID"})
			return
		}
		respondError(r.Context(), w, err, incomeNotFound, "Failed to update income transaction")
		return
	}

	redirectTo(w, r, "/income/")
}

func (s *Server) incomeFormDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.tracker.DeleteIncome(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, incomeNotFound, "Failed to delete income transaction")
		return
	}
	redirectTo(w, r, "/income/")
}

// handleExpenseForms routes /expense/, /expense/add/, /expense/{id}/edit/
// and /expense/{id}/delete/.
func (s *Server) handleExpenseForms(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/expense/"), "/")
	if rest == "" {
		if r.Method != http.MethodGet {
			writeMethodNotAllowed(w, "GET")
			return
		}
		s.listExpenses(w, r)
		return
	}
	if rest == "add" {
		if r.Method != http.MethodPost {
			writeMethodNotAllowed(w, "POST")
			return
		}
		s.expenseFormAdd(w, r)
		return
	}

	segs := strings.Split(rest, "/")
	if len(segs) != 2 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	id, err := strconv.ParseInt(segs[0], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	switch segs[1] {
	case "edit":
		switch r.Method {
		case http.MethodGet:
			s.getExpense(w, r, id)
		case http.MethodPost:
			s.expenseFormEdit(w, r, id)
		default:
			writeMethodNotAllowed(w, "GET, POST")
		}
	case "delete":
		switch r.Method {
		case http.MethodGet:
			s.getExpense(w, r, id)
		case http.MethodPost:
			s.expenseFormDelete(w, r, id)
		default:
			writeMethodNotAllowed(w, "GET, POST")
		}
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

func parseExpenseForm(p *RequestBodyParser) (core.Expense, map[string]string) {
	fieldErrors := make(map[string]string)
	var exp core.Expense

	title, err := core.NormalizeText("title", p.Get("title"))
	if err != nil {
		fieldErrors["title"] = validationReason(err)
	} else {
		exp.Title = title
	}

	if v := p.Get("amount"); v == "" {
		fieldErrors["amount"] = "Amount is required"
	} else if amount, err := core.ParseAmount(v); err != nil {
		fieldErrors["amount"] = validationReason(err)
	} else {
		exp.Amount = amount
	}

	if v := p.Get("date"); v == "" {
		fieldErrors["date"] = "Date is required"
	} else if date, err := core.ParseDate(v); err != nil {
		fieldErrors["date"] = validationReason(err)
	} else {
		exp.Date = date
	}

	return exp, fieldErrors
}

func (s *Server) expenseFormAdd(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	exp, fieldErrors := parseExpenseForm(p)
	if len(fieldErrors) > 0 {
		writeFormErrors(w, fieldErrors)
		return
	}

	if _, err := s.tracker.CreateExpense(r.Context(), exp); err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to create expense transaction")
		return
	}

	redirectTo(w, r, "/expense/")
}

func (s *Server) expenseFormEdit(w http.ResponseWriter, r *http.Request, id int64) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	exp, fieldErrors := parseExpenseForm(p)
	if len(fieldErrors) > 0 {
		writeFormErrors(w, fieldErrors)
		return
	}

	patch := core.ExpensePatch{
		Title:  &exp.Title,
		Amount: &exp.Amount,
		Date:   &exp.Date,
	}
	if _, err := s.tracker.UpdateExpense(r.Context(), id, patch); err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to update expense transaction")
		return
	}

	redirectTo(w, r, "/expense/")
}

func (s *Server) expenseFormDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.tracker.DeleteExpense(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, expenseNotFound, "Failed to delete expense transaction")
		return
	}
	redirectTo(w, r, "/expense/")
}

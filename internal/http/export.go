package http

import (
	"encoding/csv"
	"net/http"
	"time"

	"wallet/internal/core"
)

const exportTimeLayout = "2006-01-02 15:04:05"

func exportTimestamp(t time.Time) string {
	return t.UTC().Format(exportTimeLayout)
}

// handleExport streams a CSV attachment of incomes, expenses or both.
// Malformed date filters are ignored, matching the listing endpoints.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "GET")
		return
	}

	exportType := r.URL.Query().Get("type")
	if exportType == "" {
		exportType = "all"
	}
	if exportType != "all" && exportType != "income" && exportType != "expense" {
		writeError(w, http.StatusBadRequest, "Invalid export type")
		return
	}

	f := core.FilterFromQuery(r.URL.Query())
	ctx := r.Context()

	var (
		incomes  []core.Income
		expenses []core.Expense
		err      error
	)
	if exportType != "expense" {
		incomes, err = s.tracker.ListIncomes(ctx, f, core.All)
		if err != nil {
			respondError(ctx, w, err, "", "Failed to export transactions")
			return
		}
	}
	if exportType != "income" {
		expenses, err = s.tracker.ListExpenses(ctx, f, core.All)
		if err != nil {
			respondError(ctx, w, err, "", "Failed to export transactions")
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportType+`_transactions.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch exportType {
	case "income":
		cw.Write([]string{"Date", "Category", "Source", "Amount", "Note", "Created At"})
		for _, inc := range incomes {
			cw.Write([]string{
				inc.Date.String(),
				inc.CategoryName,
				inc.Source,
				inc.Amount.String(),
				inc.Note,
				exportTimestamp(inc.CreatedAt),
			})
		}

	case "expense":
		cw.Write([]string{"Date", "Title", "Amount", "Created At"})
		for _, exp := range expenses {
			cw.Write([]string{
				exp.Date.String(),
				exp.Title,
				exp.Amount.String(),
				exportTimestamp(exp.CreatedAt),
			})
		}

	default:
		cw.Write([]string{"Date", "Type", "Category", "Title/Source", "Amount", "Note", "Created At"})
		merged := make([]core.Transaction, 0, len(incomes)+len(expenses))
		for _, inc := range incomes {
			merged = append(merged, core.IncomeTransaction(inc))
		}
		for _, exp := range expenses {
			merged = append(merged, core.ExpenseTransaction(exp))
		}
		core.SortTransactions(merged)

		for _, t := range merged {
			amount := t.Amount()
			if t.Kind == core.KindExpense {
				amount = core.Money{Cents: -amount.Cents}
			}
			cw.Write([]string{
				t.Date().String(),
				string(t.Kind),
				t.CategoryName(),
				t.Title(),
				amount.String(),
				t.Note(),
				exportTimestamp(t.CreatedAt()),
			})
		}
	}
}

package http

import (
	"net/http"
)

// handleDashboardData serves the totals, balance and recent transactions
// that back the landing view.
func (s *Server) handleDashboardData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "GET")
		return
	}

	sum, err := s.summary.Summary(r.Context())
	if err != nil {
		respondError(r.Context(), w, err, "", "Failed to load dashboard data")
		return
	}

	recent := make([]envelope, 0, len(sum.Recent))
	for _, t := range sum.Recent {
		recent = append(recent, recentTransactionItem(t))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"totalIncome":         sum.TotalIncome.Dollars(),
		"totalExpenses":       sum.TotalExpenses.Dollars(),
		"currentBalance":      sum.Balance.Dollars(),
		"recent_transactions": recent,
	})
}

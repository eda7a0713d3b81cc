package http

import (
	"net/http"
	"strconv"
	"strings"

	"wallet/internal/core"
)

// handleSearch serves /api/search/?q=&type=&limit=.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "GET")
		return
	}

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeSuccess(w, http.StatusOK, envelope{
			"results": []envelope{},
			"message": "No search query provided",
		})
		return
	}

	var kind core.TransactionKind
	switch q.Get("type") {
	case "income":
		kind = core.KindIncome
	case "expense":
		kind = core.KindExpense
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	matches, err := s.summary.Search(r.Context(), query, kind, limit)
	if err != nil {
		respondError(r.Context(), w, err, "", "Search failed")
		return
	}

	results := make([]envelope, 0, len(matches))
	for _, t := range matches {
		results = append(results, searchResultItem(t))
	}

	writeSuccess(w, http.StatusOK, envelope{
		"results": results,
		"count":   len(results),
		"query":   query,
	})
}

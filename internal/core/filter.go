package core

import (
	"net/url"
	"strings"
)

// Filter narrows a listing query. All supplied predicates are combined
// with AND; zero values mean "not supplied".
type Filter struct {
	// Search matches case-insensitively against source/title, and for
	// incomes also against note and category name.
	Search string

	// Category is an exact category-name match. Incomes only.
	Category string

	// Inclusive date range.
	DateFrom *Date
	DateTo   *Date

	// Inclusive amount range.
	AmountMin *Money
	AmountMax *Money
}

// IsZero reports whether no predicate is supplied.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" &&
		f.DateFrom == nil && f.DateTo == nil &&
		f.AmountMin == nil && f.AmountMax == nil
}

// FilterFromQuery builds a Filter from request query parameters.
// Malformed date or amount values drop the predicate silently; they are
// never an error.
func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
	}
	if v := strings.TrimSpace(q.Get("date_from")); v != "" {
		if d, err := ParseDate(v); err == nil {
			f.DateFrom = &d
		}
	}
	if v := strings.TrimSpace(q.Get("date_to")); v != "" {
		if d, err := ParseDate(v); err == nil {
			f.DateTo = &d
		}
	}
	if v := strings.TrimSpace(q.Get("amount_min")); v != "" {
		if m, err := ParseAmount(v); err == nil {
			f.AmountMin = &m
		}
	}
	if v := strings.TrimSpace(q.Get("amount_max")); v != "" {
		if m, err := ParseAmount(v); err == nil {
			f.AmountMax = &m
		}
	}
	return f
}

// Page bounds a listing. Limit <= 0 means no limit.
type Page struct {
	Limit  int
	Offset int
}

// All is the unpaginated page.
var All = Page{}

package core

import (
	"net/url"
	"testing"
)

func TestFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("search", " rent ")
	q.Set("category", "Salary")
	q.Set("date_from", "2024-01-01")
	q.Set("date_to", "2024-12-31")
	q.Set("amount_min", "10.00")
	q.Set("amount_max", "500")

	f := FilterFromQuery(q)
	if f.Search != "rent" || f.Category != "Salary" {
		t.Fatalf("unexpected text predicates: %+v", f)
	}
	if f.DateFrom == nil || f.DateFrom.String() != "2024-01-01" {
		t.Fatalf("date_from not parsed: %+v", f.DateFrom)
	}
	if f.DateTo == nil || f.DateTo.String() != "2024-12-31" {
		t.Fatalf("date_to not parsed: %+v", f.DateTo)
	}
	if f.AmountMin == nil || f.AmountMin.Cents != 1000 {
		t.Fatalf("amount_min not parsed: %+v", f.AmountMin)
	}
	if f.AmountMax == nil || f.AmountMax.Cents != 50000 {
		t.Fatalf("amount_max not parsed: %+v", f.AmountMax)
	}
}

func TestFilterFromQueryDropsMalformed(t *testing.T) {
	q := url.Values{}
	q.Set("date_from", "not-a-date")
	q.Set("amount_min", "abc")
	q.Set("amount_max", "-5")

	f := FilterFromQuery(q)
	if f.DateFrom != nil || f.AmountMin != nil || f.AmountMax != nil {
		t.Fatalf("malformed predicates should be dropped, got %+v", f)
	}
	if !f.IsZero() {
		t.Fatalf("expected zero filter, got %+v", f)
	}
}

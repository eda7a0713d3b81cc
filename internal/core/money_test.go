package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0.01", 1, true},
		{" 2.50 ", 250, true},
		{"99999999.99", 9_999_999_999, true},
		{"100000000.00", 0, false},
		{"1.005", 0, false}, // three decimal places
		{"1.234", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d cents, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error, got %d cents", tc.in, got.Cents)
			}
			if _, ok := AsValidation(err); !ok {
				t.Fatalf("%q expected validation error, got %v", tc.in, err)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{250075, "2500.75"},
		{9_999_999_999, "99999999.99"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("%d cents: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestBalance(t *testing.T) {
	cases := []struct {
		income, expenses, want int64
	}{
		{250000, 25000, 225000},
		{0, 25000, -25000},
		{250000, 0, 250000},
		{0, 0, 0},
	}
	for _, tc := range cases {
		got := Balance(Money{Cents: tc.income}, Money{Cents: tc.expenses})
		if got.Cents != tc.want {
			t.Fatalf("Balance(%d, %d) = %d, want %d", tc.income, tc.expenses, got.Cents, tc.want)
		}
		// Referential transparency: repeat call, identical output.
		if again := Balance(Money{Cents: tc.income}, Money{Cents: tc.expenses}); again != got {
			t.Fatalf("Balance not pure: %v != %v", again, got)
		}
	}
}

func TestMoneyValidateBounds(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("0.01 should be valid: %v", err)
	}
	if err := (Money{Cents: MaxCents}).Validate(); err != nil {
		t.Fatalf("max amount should be valid: %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatal("zero amount should be invalid")
	}
	if err := (Money{Cents: MaxCents + 1}).Validate(); err == nil {
		t.Fatal("amount over max should be invalid")
	}
}

package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-13-01", false},
		{"15-01-2024", false},
		{"not a date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.String() != tc.in {
				t.Fatalf("%q round-trip gave %q", tc.in, d.String())
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestDateValidateFutureBound(t *testing.T) {
	today := Today()
	if err := today.Validate(); err != nil {
		t.Fatalf("today should be valid: %v", err)
	}

	inOneYear := Date{Time: today.AddDate(1, 0, 0)}
	if err := inOneYear.Validate(); err != nil {
		t.Fatalf("today+1y should be valid: %v", err)
	}

	tooFar := Date{Time: today.AddDate(1, 0, 1)}
	if err := tooFar.Validate(); err == nil {
		t.Fatal("date beyond one year should be invalid")
	}

	if err := (Date{}).Validate(); err == nil {
		t.Fatal("zero date should be invalid")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 6, 1)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-06-01"` {
		t.Fatalf("unexpected JSON %s", b)
	}

	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("round-trip gave %v", back)
	}
}

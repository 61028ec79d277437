package dateutil

import (
	"testing"
	"time"
)

func TestParseAndFormat_RoundTrip(t *testing.T) {
	d, err := Parse("2024-06-10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %v", d)
	}
	if got := Format(d); got != "2024-06-10" {
		t.Fatalf("Format = %q", got)
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	if _, err := Parse("10/06/2024"); err == nil {
		t.Fatal("want error for non-canonical date")
	}
}

func TestDaysInclusive(t *testing.T) {
	from, _ := Parse("2024-06-10")
	to, _ := Parse("2024-06-12")
	if got := DaysInclusive(from, to); got != 3 {
		t.Fatalf("DaysInclusive = %d, want 3", got)
	}
	if got := DaysInclusive(from, from); got != 1 {
		t.Fatalf("single day = %d, want 1", got)
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2024)
	if Format(start) != "2024-01-01" || Format(end) != "2025-01-01" {
		t.Fatalf("bounds = %s..%s", Format(start), Format(end))
	}
	// leap year is covered by the half-open upper bound
	lastDay, _ := Parse("2024-12-31")
	if !lastDay.Before(end) {
		t.Fatal("Dec 31 must fall inside the year bounds")
	}
}

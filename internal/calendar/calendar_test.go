package calendar

import (
	"testing"
	"time"
)

func TestNavigateAcrossYearBoundary(t *testing.T) {
	dec := Month{Year: 2024, Month: time.December}
	next := dec.Navigate(1)
	if next.Year != 2025 || next.Month != time.January {
		t.Fatalf("expected January 2025, got %s %d", next.Month, next.Year)
	}

	jan := Month{Year: 2025, Month: time.January}
	prev := jan.Navigate(-1)
	if prev.Year != 2024 || prev.Month != time.December {
		t.Fatalf("expected December 2024, got %s %d", prev.Month, prev.Year)
	}
}

func TestDayCountLeapYear(t *testing.T) {
	if got := (Month{Year: 2024, Month: time.February}).DayCount(); got != 29 {
		t.Fatalf("February 2024 must have 29 days, got %d", got)
	}
	if got := (Month{Year: 2026, Month: time.February}).DayCount(); got != 28 {
		t.Fatalf("February 2026 must have 28 days, got %d", got)
	}
	if got := (Month{Year: 2026, Month: time.April}).DayCount(); got != 30 {
		t.Fatalf("April must have 30 days, got %d", got)
	}
}

func TestDaysLeadingPlaceholdersMondayFirst(t *testing.T) {
	// February 2026 starts on a Sunday: six placeholders before the 1st.
	days := (Month{Year: 2026, Month: time.February}).Days()
	if len(days) != 6+28 {
		t.Fatalf("expected 34 cells, got %d", len(days))
	}
	for i := 0; i < 6; i++ {
		if days[i] != nil {
			t.Fatalf("cell %d should be a placeholder", i)
		}
	}
	if days[6] == nil || days[6].Day() != 1 {
		t.Fatalf("cell 6 should be the 1st, got %v", days[6])
	}
	if last := days[len(days)-1]; last == nil || last.Day() != 28 {
		t.Fatalf("last cell should be the 28th, got %v", last)
	}
}

func TestDaysMonthStartingMonday(t *testing.T) {
	// June 2026 starts on a Monday: no placeholders at all.
	days := (Month{Year: 2026, Month: time.June}).Days()
	if len(days) != 30 {
		t.Fatalf("expected 30 cells, got %d", len(days))
	}
	if days[0] == nil || days[0].Day() != 1 {
		t.Fatalf("first cell should be the 1st, got %v", days[0])
	}
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(monday); got != 0 {
		t.Fatalf("Monday must map to 0, got %d", got)
	}
	sunday := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(sunday); got != 6 {
		t.Fatalf("Sunday must map to 6, got %d", got)
	}
}

func TestTitleUsesRussianMonthName(t *testing.T) {
	if got := (Month{Year: 2026, Month: time.February}).Title(); got != "февраль 2026" {
		t.Fatalf("unexpected title %q", got)
	}
}

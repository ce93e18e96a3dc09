package daterange

import (
	"testing"
	"time"
)

var today = time.Date(2025, 8, 30, 14, 30, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		query    string
		wantDays int
	}{
		{"last 7 days", 7},
		{"Show sentiment trends for the last 7 days", 7},
		{"past 2 weeks", 14},
		{"last month", 30},
		{"past month", 30},
		{"last 3 days", 3},
		{"past 10 days", 10},
		{"last 2 months", 60},
		{"last year", 365},
		{"past 1 year", 365},
		{"last week", 7},
		{"how are things going", 7},
		{"", 7},
		{"show everything", 7},
	}

	for _, tt := range tests {
		start, end := Parse(tt.query, today)
		if !end.Equal(day) {
			t.Errorf("Parse(%q) end = %v, want %v", tt.query, end, day)
		}
		wantStart := day.AddDate(0, 0, -tt.wantDays)
		if !start.Equal(wantStart) {
			t.Errorf("Parse(%q) start = %v, want %v (%d days)", tt.query, start, wantStart, tt.wantDays)
		}
	}
}

func TestParseFirstNumberWins(t *testing.T) {
	start, end := Parse("last 2 or maybe 5 weeks", today)
	if got := int(end.Sub(start).Hours() / 24); got != 14 {
		t.Errorf("window = %d days, want 14", got)
	}
}

func TestParseEndIsCalendarDay(t *testing.T) {
	_, end := Parse("last 7 days", today)
	if end.Hour() != 0 || end.Minute() != 0 || end.Second() != 0 {
		t.Errorf("end should be truncated to a calendar day, got %v", end)
	}
}

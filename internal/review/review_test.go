package review

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Sentiment
	}{
		{"positive", Positive},
		{"Positive", Positive},
		{"very positive overall", Positive},
		{"good", Positive},
		{"GREAT", Positive},
		{"negative", Negative},
		{"bad", Negative},
		{"Poor", Negative},
		{"pretty poor showing", Negative},
		{"neutral", Neutral},
		{"mixed", Neutral},
		{"", Neutral},
		{"meh, whatever", Neutral},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSentimentValid(t *testing.T) {
	for _, s := range []Sentiment{Positive, Negative, Neutral} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Sentiment("happy").Valid() {
		t.Error(`"happy" should not be valid`)
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2025, 8, 30, 15, 42, 7, 123, time.FixedZone("X", 3600))
	got := Day(in)
	want := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}

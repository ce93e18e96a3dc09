// Package review defines the review record shared by the data generator,
// the feedback agent, and the analysis tools.
package review

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used in the reviews CSV.
const DateLayout = "2006-01-02"

// Sentiment is one of the three categories assigned to a piece of review text.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three enumerated sentiments.
func (s Sentiment) Valid() bool {
	return s == Positive || s == Negative || s == Neutral
}

// Normalize maps a free-form sentiment string onto one of the three
// categories by keyword containment. Anything unrecognised is neutral.
func Normalize(s string) Sentiment {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "positive"),
		strings.Contains(lower, "good"),
		strings.Contains(lower, "great"):
		return Positive
	case strings.Contains(lower, "negative"),
		strings.Contains(lower, "bad"),
		strings.Contains(lower, "poor"):
		return Negative
	default:
		return Neutral
	}
}

// Review is a single customer review. Date carries calendar-day resolution.
type Review struct {
	Date       time.Time
	Text       string
	Sentiment  Sentiment
	ReviewID   string
	CustomerID string
}

// Day truncates t to midnight UTC so review dates compare as calendar days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Package visualize analyses time-windowed sentiment counts and renders
// them as charts, driven by natural-language queries.
package visualize

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/steamnoodles/sentiment-agents/internal/daterange"
	"github.com/steamnoodles/sentiment-agents/internal/review"
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Column order used by the summary table and the chart legend.
var sentimentOrder = []review.Sentiment{review.Negative, review.Neutral, review.Positive}

// filterRange returns the reviews dated within [start, end] inclusive.
func filterRange(reviews []review.Review, start, end time.Time) []review.Review {
	var out []review.Review
	for _, r := range reviews {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// countByDay aggregates review counts per day per sentiment. Days are
// returned sorted ascending; only days with at least one review appear.
func countByDay(reviews []review.Review) ([]time.Time, map[time.Time]map[review.Sentiment]int) {
	counts := make(map[time.Time]map[review.Sentiment]int)
	for _, r := range reviews {
		d := review.Day(r.Date)
		if counts[d] == nil {
			counts[d] = make(map[review.Sentiment]int)
		}
		counts[d][r.Sentiment]++
	}

	days := make([]time.Time, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, counts
}

func noDataMessage(start, end time.Time) string {
	return fmt.Sprintf("No data found for date range %s to %s",
		start.Format(review.DateLayout), end.Format(review.DateLayout))
}

// AnalysisTool summarises sentiment counts for a queried date range.
// It satisfies the langchaingo tools.Tool interface.
type AnalysisTool struct {
	reviews []review.Review
	clock   Clock
}

// NewAnalysisTool creates an AnalysisTool over the given reviews.
func NewAnalysisTool(reviews []review.Review) *AnalysisTool {
	return &AnalysisTool{reviews: reviews, clock: realClock{}}
}

func (t *AnalysisTool) Name() string {
	return "analyze_data"
}

func (t *AnalysisTool) Description() string {
	return "Analyze sentiment data for a given date range"
}

// Call parses a date range out of input and returns a textual breakdown of
// review counts per day per sentiment. Degraded results are returned as
// text; the error is always nil so the reasoning loop keeps going.
func (t *AnalysisTool) Call(_ context.Context, input string) (string, error) {
	start, end := daterange.Parse(input, t.clock.Now())
	filtered := filterRange(t.reviews, start, end)
	if len(filtered) == 0 {
		return noDataMessage(start, end), nil
	}

	days, counts := countByDay(filtered)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Date range: %s to %s\n", start.Format(review.DateLayout), end.Format(review.DateLayout))
	fmt.Fprintf(&sb, "Total reviews: %d\n", len(filtered))
	sb.WriteString("Daily sentiment breakdown:\n")
	fmt.Fprintf(&sb, "%-12s", "date")
	for _, s := range sentimentOrder {
		fmt.Fprintf(&sb, " %9s", s)
	}
	sb.WriteString("\n")
	for _, d := range days {
		fmt.Fprintf(&sb, "%-12s", d.Format(review.DateLayout))
		for _, s := range sentimentOrder {
			fmt.Fprintf(&sb, " %9d", counts[d][s])
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

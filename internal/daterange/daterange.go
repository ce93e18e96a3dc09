// Package daterange interprets natural-language date ranges such as
// "last 7 days" or "past 2 weeks".
package daterange

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/steamnoodles/sentiment-agents/internal/review"
)

// DefaultDays is the window used when a query has no recognisable range.
const DefaultDays = 7

var numberRe = regexp.MustCompile(`\d+`)

// Parse extracts an inclusive [start, end] calendar-day range from query,
// with end = today. A query containing "last" or "past" contributes its
// first integer as the magnitude, scaled by 7/30/365 when "week"/"month"/
// "year" appears (a bare unit counts as one of it). Anything else falls
// back to the trailing DefaultDays days. The magnitude is not bounded.
func Parse(query string, today time.Time) (start, end time.Time) {
	end = review.Day(today)

	lower := strings.ToLower(query)
	if strings.Contains(lower, "last") || strings.Contains(lower, "past") {
		unit := unitDays(lower)
		n := 0
		if m := numberRe.FindString(lower); m != "" {
			// Only the first number in the query is considered.
			n, _ = strconv.Atoi(m)
		}
		switch {
		case n > 0:
			return end.AddDate(0, 0, -n*unit), end
		case unit > 1:
			// "last month", "past week": no explicit count, one unit.
			return end.AddDate(0, 0, -unit), end
		}
	}

	return end.AddDate(0, 0, -DefaultDays), end
}

func unitDays(lower string) int {
	switch {
	case strings.Contains(lower, "week"):
		return 7
	case strings.Contains(lower, "month"):
		return 30
	case strings.Contains(lower, "year"):
		return 365
	default:
		return 1
	}
}

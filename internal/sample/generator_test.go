package sample

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/steamnoodles/sentiment-agents/internal/dataset"
	"github.com/steamnoodles/sentiment-agents/internal/review"
)

var fixedNow = time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

func fixedOpts(count, daysBack int) Options {
	return Options{
		Count:    count,
		DaysBack: daysBack,
		Rand:     rand.New(rand.NewSource(42)),
		Now:      fixedNow,
	}
}

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{1, 10, 200} {
		if got := len(Generate(fixedOpts(n, 30))); got != n {
			t.Errorf("Generate(count=%d) produced %d reviews", n, got)
		}
	}
}

func TestGenerateDatesWithinWindow(t *testing.T) {
	daysBack := 14
	end := review.Day(fixedNow)
	start := end.AddDate(0, 0, -daysBack)

	for _, r := range Generate(fixedOpts(100, daysBack)) {
		if r.Date.Before(start) || r.Date.After(end) {
			t.Errorf("review %s dated %v, outside [%v, %v]", r.ReviewID, r.Date, start, end)
		}
	}
}

func TestGenerateSentimentsValid(t *testing.T) {
	for _, r := range Generate(fixedOpts(200, 30)) {
		if !r.Sentiment.Valid() {
			t.Errorf("review %s has invalid sentiment %q", r.ReviewID, r.Sentiment)
		}
	}
}

func TestGenerateTextMatchesSentiment(t *testing.T) {
	pools := map[review.Sentiment][]string{
		review.Positive: positiveReviews,
		review.Negative: negativeReviews,
		review.Neutral:  neutralReviews,
	}
	for _, r := range Generate(fixedOpts(50, 30)) {
		found := false
		for _, base := range pools[r.Sentiment] {
			if len(r.Text) >= len(base) && r.Text[:len(base)] == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("review %s text %q not drawn from the %s pool", r.ReviewID, r.Text, r.Sentiment)
		}
	}
}

func TestGenerateSortedByDate(t *testing.T) {
	reviews := Generate(fixedOpts(100, 30))
	for i := 1; i < len(reviews); i++ {
		if reviews[i].Date.Before(reviews[i-1].Date) {
			t.Fatalf("reviews not sorted at index %d: %v before %v", i, reviews[i].Date, reviews[i-1].Date)
		}
	}
}

func TestGenerateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "restaurant_reviews.csv")
	if err := GenerateFile(path, fixedOpts(75, 30)); err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}
	got, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got) != 75 {
		t.Errorf("loaded %d reviews, want 75", len(got))
	}
}

func TestAppendGrowsDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant_reviews.csv")
	if err := GenerateFile(path, fixedOpts(40, 30)); err != nil {
		t.Fatal(err)
	}
	if err := Append(path, 10); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	got, err := dataset.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 50 {
		t.Errorf("after Append loaded %d reviews, want 50", len(got))
	}
}

func TestAppendWithoutExistingDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant_reviews.csv")
	if err := Append(path, 25); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	got, err := dataset.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 25 {
		t.Errorf("loaded %d reviews, want 25", len(got))
	}
}

// Package dataset reads and writes the reviews CSV. The file is the only
// persistence in the system and is always written wholesale.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/steamnoodles/sentiment-agents/internal/review"
)

var header = []string{"date", "review_text", "sentiment", "review_id", "customer_id"}

// Write creates the parent directory if needed and writes reviews to path,
// replacing any existing file.
func Write(path string, reviews []review.Review) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range reviews {
		row := []string{
			r.Date.Format(review.DateLayout),
			r.Text,
			string(r.Sentiment),
			r.ReviewID,
			r.CustomerID,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing review %s: %w", r.ReviewID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// Load reads the whole reviews CSV. The generator is the sole writer, so a
// malformed date or an unknown sentiment is an error rather than a skip.
func Load(path string) ([]review.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(header), len(records[0]))
	}

	reviews := make([]review.Review, 0, len(records)-1)
	for i, rec := range records[1:] {
		date, err := parseDay(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		s := review.Sentiment(rec[2])
		if !s.Valid() {
			return nil, fmt.Errorf("%s row %d: unknown sentiment %q", path, i+2, rec[2])
		}
		reviews = append(reviews, review.Review{
			Date:       date,
			Text:       rec[1],
			Sentiment:  s,
			ReviewID:   rec[3],
			CustomerID: rec[4],
		})
	}
	return reviews, nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(review.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// Exists reports whether a dataset file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

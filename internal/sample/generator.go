// Package sample fabricates synthetic restaurant reviews for the demo
// dataset.
package sample

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/steamnoodles/sentiment-agents/internal/dataset"
	"github.com/steamnoodles/sentiment-agents/internal/review"
)

const (
	// DefaultCount is the number of reviews generated when none is given.
	DefaultCount = 200
	// DefaultDaysBack is the generation window when none is given.
	DefaultDaysBack = 30
	// appendDaysBack widens the window when extending an existing dataset.
	appendDaysBack = 45
)

// Sentiment sampling weights: 50% positive, 30% negative, 20% neutral.
var weights = []struct {
	sentiment review.Sentiment
	weight    float64
}{
	{review.Positive, 0.5},
	{review.Negative, 0.3},
	{review.Neutral, 0.2},
}

// variationChance is the probability a review gets an appended variation.
const variationChance = 0.3

// Options controls generation. Zero values take the package defaults;
// Rand and Now exist so tests can be deterministic.
type Options struct {
	Count    int
	DaysBack int
	Rand     *rand.Rand
	Now      time.Time
}

func (o Options) withDefaults() Options {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.DaysBack <= 0 {
		o.DaysBack = DefaultDaysBack
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Generate fabricates opts.Count reviews dated within the trailing
// opts.DaysBack days, sorted by date.
func Generate(opts Options) []review.Review {
	opts = opts.withDefaults()

	end := review.Day(opts.Now)
	start := end.AddDate(0, 0, -opts.DaysBack)

	reviews := make([]review.Review, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		date := start.AddDate(0, 0, opts.Rand.Intn(opts.DaysBack+1))
		sentiment := pickSentiment(opts.Rand)
		text := pickText(opts.Rand, sentiment)
		if opts.Rand.Float64() < variationChance {
			text += variations[opts.Rand.Intn(len(variations))]
		}
		reviews = append(reviews, review.Review{
			Date:       date,
			Text:       text,
			Sentiment:  sentiment,
			ReviewID:   fmt.Sprintf("R%04d", i+1),
			CustomerID: fmt.Sprintf("C%d", 1000+opts.Rand.Intn(9000)),
		})
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.Before(reviews[j].Date)
	})
	return reviews
}

// GenerateFile generates reviews and writes them to path, replacing any
// existing dataset.
func GenerateFile(path string, opts Options) error {
	opts = opts.withDefaults()
	reviews := Generate(opts)
	if err := dataset.Write(path, reviews); err != nil {
		return err
	}

	counts := map[review.Sentiment]int{}
	for _, r := range reviews {
		counts[r.Sentiment]++
	}
	end := review.Day(opts.Now)
	slog.Info("generated sample reviews",
		"count", len(reviews),
		"from", end.AddDate(0, 0, -opts.DaysBack).Format(review.DateLayout),
		"to", end.Format(review.DateLayout),
		"positive", counts[review.Positive],
		"negative", counts[review.Negative],
		"neutral", counts[review.Neutral],
		"path", path,
	)
	return nil
}

// Append grows an existing dataset by additional reviews, regenerating the
// file wholesale over a wider window. A missing dataset is generated fresh.
func Append(path string, additional int) error {
	if additional <= 0 {
		additional = 50
	}
	if !dataset.Exists(path) {
		slog.Info("no existing dataset, generating a new one", "path", path)
		return GenerateFile(path, Options{Count: additional})
	}
	existing, err := dataset.Load(path)
	if err != nil {
		return fmt.Errorf("loading existing dataset: %w", err)
	}
	return GenerateFile(path, Options{
		Count:    len(existing) + additional,
		DaysBack: appendDaysBack,
	})
}

func pickSentiment(r *rand.Rand) review.Sentiment {
	roll := r.Float64()
	acc := 0.0
	for _, w := range weights {
		acc += w.weight
		if roll < acc {
			return w.sentiment
		}
	}
	return review.Neutral
}

func pickText(r *rand.Rand, s review.Sentiment) string {
	switch s {
	case review.Positive:
		return positiveReviews[r.Intn(len(positiveReviews))]
	case review.Negative:
		return negativeReviews[r.Intn(len(negativeReviews))]
	default:
		return neutralReviews[r.Intn(len(neutralReviews))]
	}
}

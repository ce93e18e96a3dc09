package visualize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/steamnoodles/sentiment-agents/internal/daterange"
	"github.com/steamnoodles/sentiment-agents/internal/review"
)

// filenameStamp is the timestamp embedded in chart filenames.
const filenameStamp = "20060102_150405"

// PlotTool renders a two-panel sentiment chart (line trend on top, stacked
// bars below) for a queried date range. It satisfies the langchaingo
// tools.Tool interface.
type PlotTool struct {
	reviews   []review.Review
	outputDir string
	clock     Clock
}

// NewPlotTool creates a PlotTool writing PNG files under outputDir.
func NewPlotTool(reviews []review.Review, outputDir string) *PlotTool {
	return &PlotTool{reviews: reviews, outputDir: outputDir, clock: realClock{}}
}

func (t *PlotTool) Name() string {
	return "create_plot"
}

func (t *PlotTool) Description() string {
	return "Create and save sentiment visualization plots"
}

// Call parses a date range out of input, renders the chart, and reports the
// saved file path. Like the analysis tool it returns degraded results as
// text rather than an error.
func (t *PlotTool) Call(_ context.Context, input string) (string, error) {
	start, end := daterange.Parse(input, t.clock.Now())
	filtered := filterRange(t.reviews, start, end)
	if len(filtered) == 0 {
		return noDataMessage(start, end), nil
	}

	path, err := t.render(filtered, start, end)
	if err != nil {
		slog.Warn("chart rendering failed", "error", err)
		return fmt.Sprintf("Error creating visualization: %v", err), nil
	}
	return "Visualization saved to " + path, nil
}

func (t *PlotTool) render(filtered []review.Review, start, end time.Time) (string, error) {
	days, counts := countByDay(filtered)

	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Format(review.DateLayout)
	}

	trend := plot.New()
	trend.Title.Text = fmt.Sprintf("Sentiment Trends Over Time (%s to %s)",
		start.Format(review.DateLayout), end.Format(review.DateLayout))
	trend.X.Label.Text = "Date"
	trend.Y.Label.Text = "Number of Reviews"
	trend.Legend.Top = true
	trend.NominalX(labels...)

	for i, s := range sentimentOrder {
		pts := make(plotter.XYs, len(days))
		for j, d := range days {
			pts[j].X = float64(j)
			pts[j].Y = float64(counts[d][s])
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return "", fmt.Errorf("building %s trend line: %w", s, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		trend.Add(line, points)
		trend.Legend.Add(string(s), line, points)
	}

	dist := plot.New()
	dist.Title.Text = "Daily Sentiment Distribution"
	dist.X.Label.Text = "Date"
	dist.Y.Label.Text = "Number of Reviews"
	dist.Legend.Top = true
	dist.NominalX(labels...)

	barWidth := vg.Points(14)
	var prev *plotter.BarChart
	for i, s := range sentimentOrder {
		vals := make(plotter.Values, len(days))
		for j, d := range days {
			vals[j] = float64(counts[d][s])
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return "", fmt.Errorf("building %s bars: %w", s, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		dist.Add(bars)
		dist.Legend.Add(string(s), bars)
		prev = bars
	}

	img := vgimg.New(30*vg.Centimeter, 25*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadY: vg.Millimeter * 5,
	}
	canvases := plot.Align([][]*plot.Plot{{trend}, {dist}}, tiles, dc)
	trend.Draw(canvases[0][0])
	dist.Draw(canvases[1][0])

	if err := os.MkdirAll(t.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := fmt.Sprintf("sentiment_analysis_%s.png", t.clock.Now().Format(filenameStamp))
	path := filepath.Join(t.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return path, nil
}

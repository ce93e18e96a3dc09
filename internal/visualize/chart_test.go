package visualize

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestPlotToolCreatesChart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	tool := NewPlotTool(testReviews(), dir)
	tool.clock = fixedClock{testNow}

	out, err := tool.Call(context.Background(), "last 7 days")
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if !strings.HasPrefix(out, "Visualization saved to ") {
		t.Fatalf("Call() = %q", out)
	}

	path := strings.TrimPrefix(out, "Visualization saved to ")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}

	nameRe := regexp.MustCompile(`^sentiment_analysis_\d{8}_\d{6}\.png$`)
	if !nameRe.MatchString(filepath.Base(path)) {
		t.Errorf("unexpected chart filename %q", filepath.Base(path))
	}
}

func TestPlotToolNoDataWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	tool := NewPlotTool(nil, dir)
	tool.clock = fixedClock{testNow}

	out, err := tool.Call(context.Background(), "last 7 days")
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if !strings.HasPrefix(out, "No data found for date range") {
		t.Errorf("Call() = %q, want no-data message", out)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory should not be created when there is no data")
	}
}

func TestPlotToolCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")
	tool := NewPlotTool(testReviews(), dir)
	tool.clock = fixedClock{testNow}

	if _, err := tool.Call(context.Background(), "last 7 days"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 chart file, found %d", len(entries))
	}
}

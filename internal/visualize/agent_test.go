package visualize

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// stubLoop implements loopRunner for testing.
type stubLoop struct {
	output string
	err    error
	input  string
}

func (s *stubLoop) Run(_ context.Context, input string) (string, error) {
	s.input = input
	return s.output, s.err
}

func testAgent(t *testing.T, loop loopRunner) *Agent {
	t.Helper()
	reviews := testReviews()
	analysis := NewAnalysisTool(reviews)
	analysis.clock = fixedClock{testNow}
	plotTool := NewPlotTool(reviews, filepath.Join(t.TempDir(), "outputs"))
	plotTool.clock = fixedClock{testNow}
	return &Agent{loop: loop, analysis: analysis, plotTool: plotTool}
}

func TestGenerateVisualizationReturnsPathFromLoop(t *testing.T) {
	loop := &stubLoop{
		output: "I created the chart. Final Answer: outputs/sentiment_analysis_20250830_101500.png",
	}
	a := testAgent(t, loop)

	got := a.GenerateVisualization(context.Background(), "last 7 days")
	if got != "outputs/sentiment_analysis_20250830_101500.png" {
		t.Errorf("GenerateVisualization() = %q", got)
	}
	if !strings.HasPrefix(loop.input, "Create a sentiment visualization for: ") {
		t.Errorf("loop input = %q, missing enhancement prefix", loop.input)
	}
}

func TestGenerateVisualizationFallsBackWithoutPath(t *testing.T) {
	loop := &stubLoop{output: "I analyzed the data but did not plot anything."}
	a := testAgent(t, loop)

	got := a.GenerateVisualization(context.Background(), "last 7 days")
	if !strings.HasPrefix(got, "Visualization saved to ") {
		t.Errorf("fallback should invoke the plot tool, got %q", got)
	}
}

func TestGenerateVisualizationFallsBackOnLoopError(t *testing.T) {
	loop := &stubLoop{err: errors.New("agent not finished before max iterations")}
	a := testAgent(t, loop)

	got := a.GenerateVisualization(context.Background(), "last 7 days")
	if !strings.HasPrefix(got, "Visualization saved to ") {
		t.Errorf("fallback should invoke the plot tool, got %q", got)
	}
}

func TestDataSummaryBypassesLoop(t *testing.T) {
	loop := &stubLoop{err: errors.New("should not be called")}
	a := testAgent(t, loop)

	got := a.DataSummary(context.Background(), "last 7 days")
	if !strings.Contains(got, "Total reviews: 5") {
		t.Errorf("DataSummary() = %q", got)
	}
	if loop.input != "" {
		t.Error("DataSummary must not run the reasoning loop")
	}
}

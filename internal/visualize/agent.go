package visualize

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/steamnoodles/sentiment-agents/internal/dataset"
)

const (
	// maxIterations bounds the reasoning loop.
	maxIterations = 3

	loopTemperature = 0.1
	loopMaxTokens   = 1000
)

// outputPathRe recognises a generated chart path in the loop's final answer.
var outputPathRe = regexp.MustCompile(`outputs/sentiment_analysis_\d+_\d+\.png`)

// loopRunner is the slice of the reasoning loop the agent needs.
type loopRunner interface {
	Run(ctx context.Context, input string) (string, error)
}

// reactLoop adapts a langchaingo agent executor to loopRunner. The
// iterative think/act/observe control flow is owned entirely by langchaingo.
type reactLoop struct {
	executor *agents.Executor
}

func (l *reactLoop) Run(ctx context.Context, input string) (string, error) {
	return chains.Run(ctx, l.executor, input,
		chains.WithTemperature(loopTemperature),
		chains.WithMaxTokens(loopMaxTokens),
	)
}

// Agent answers natural-language visualization requests by letting a ReAct
// loop choose between the analysis tool and the plot tool, with a direct
// plot-tool fallback when the loop fails or produces no usable file path.
type Agent struct {
	loop     loopRunner
	analysis *AnalysisTool
	plotTool *PlotTool
}

// NewAgent loads the reviews dataset and builds the agent and its tools.
func NewAgent(llm llms.Model, dataFile, outputDir string) (*Agent, error) {
	reviews, err := dataset.Load(dataFile)
	if err != nil {
		return nil, fmt.Errorf("loading review data: %w", err)
	}

	analysis := NewAnalysisTool(reviews)
	plotTool := NewPlotTool(reviews, outputDir)

	executor, err := agents.Initialize(
		llm,
		[]tools.Tool{analysis, plotTool},
		agents.ZeroShotReactDescription,
		agents.WithMaxIterations(maxIterations),
	)
	if err != nil {
		return nil, fmt.Errorf("building reasoning loop: %w", err)
	}

	return &Agent{
		loop:     &reactLoop{executor: &executor},
		analysis: analysis,
		plotTool: plotTool,
	}, nil
}

// GenerateVisualization runs the reasoning loop over the query and returns
// either the chart path found in its final answer or, failing that, the
// result of invoking the plot tool directly.
func (a *Agent) GenerateVisualization(ctx context.Context, query string) string {
	input := "Create a sentiment visualization for: " + query

	out, err := a.loop.Run(ctx, input)
	if err != nil {
		slog.Warn("reasoning loop failed, invoking plot tool directly", "error", err)
		return a.directPlot(ctx, query)
	}
	if m := outputPathRe.FindString(out); m != "" {
		return m
	}
	return a.directPlot(ctx, query)
}

// DataSummary bypasses the loop and returns the analysis tool's summary.
func (a *Agent) DataSummary(ctx context.Context, query string) string {
	out, _ := a.analysis.Call(ctx, query)
	return out
}

func (a *Agent) directPlot(ctx context.Context, query string) string {
	out, _ := a.plotTool.Call(ctx, query)
	return out
}

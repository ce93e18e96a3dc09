// Package feedback classifies customer review sentiment and drafts a reply
// through a single LLM completion.
package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	"github.com/steamnoodles/sentiment-agents/internal/review"
)

const (
	temperature = 0.7
	maxTokens   = 200

	emptyInputReply  = "Thank you for taking the time to provide feedback!"
	callFailureReply = "Thank you for your feedback. We appreciate your input and will use it to improve our service!"
)

// Completer is the slice of the LLM surface the agent needs.
// Satisfied by *openai.LLM from langchaingo.
type Completer interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Agent turns raw customer feedback into a sentiment label and a canned reply.
type Agent struct {
	llm    Completer
	prompt prompts.PromptTemplate
}

// NewAgent creates a feedback agent backed by the given completer.
func NewAgent(llm Completer) *Agent {
	return &Agent{llm: llm, prompt: responsePrompt()}
}

// Process classifies one piece of feedback and drafts a reply. It never
// fails: blank input short-circuits to a fixed neutral response, and any
// LLM or formatting error degrades to a neutral default.
func (a *Agent) Process(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Sentiment: review.Neutral, Reply: emptyInputReply}
	}

	prompt, err := a.prompt.Format(map[string]any{"feedback": text})
	if err != nil {
		slog.Warn("formatting feedback prompt failed", "error", err)
		return Result{Sentiment: review.Neutral, Reply: callFailureReply}
	}

	out, err := a.llm.Call(ctx, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		slog.Warn("feedback completion failed", "error", err)
		return Result{Sentiment: review.Neutral, Reply: callFailureReply}
	}

	return ParseResponse(out)
}

// BatchResult pairs a processed feedback with its original text and an
// interaction id for log correlation.
type BatchResult struct {
	ID        string
	Feedback  string
	Sentiment review.Sentiment
	Reply     string
}

// BatchProcess runs Process over each item in order. Items degrade
// individually; one bad item never affects the others.
func (a *Agent) BatchProcess(ctx context.Context, items []string) []BatchResult {
	results := make([]BatchResult, 0, len(items))
	for _, item := range items {
		id := uuid.NewString()
		res := a.Process(ctx, item)
		slog.Info("processed feedback", "interaction", id, "sentiment", res.Sentiment)
		results = append(results, BatchResult{
			ID:        id,
			Feedback:  item,
			Sentiment: res.Sentiment,
			Reply:     res.Reply,
		})
	}
	return results
}

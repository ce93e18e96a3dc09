package feedback

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/steamnoodles/sentiment-agents/internal/review"
)

// Result is the outcome of processing one piece of feedback.
type Result struct {
	Sentiment review.Sentiment `json:"sentiment"`
	Reply     string           `json:"reply"`
}

const defaultReply = "Thank you for your feedback!"

var (
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	sentimentRe  = regexp.MustCompile(`(?i)sentiment["\s]*:["\s]*([^",\n]+)`)
	responseRe   = regexp.MustCompile(`(?i)response["\s]*:["\s]*([^",\n]+)`)
)

// ParseResponse extracts a sentiment and reply from raw model output.
// It tries an embedded JSON object first, then labeled "sentiment"/"response"
// fields, and finally falls back to a neutral default. It never fails:
// unusable output degrades to the default with a warning log.
func ParseResponse(text string) Result {
	if m := jsonObjectRe.FindString(text); m != "" {
		var raw struct {
			Sentiment string `json:"sentiment"`
			Response  string `json:"response"`
		}
		if err := json.Unmarshal([]byte(m), &raw); err == nil {
			reply := strings.TrimSpace(raw.Response)
			if reply == "" {
				reply = defaultReply
			}
			return Result{Sentiment: review.Normalize(raw.Sentiment), Reply: reply}
		}
		slog.Warn("model output contained malformed JSON, trying labeled fields", "output", text)
	}

	sentiment := "neutral"
	reply := defaultReply
	sm := sentimentRe.FindStringSubmatch(text)
	rm := responseRe.FindStringSubmatch(text)
	if sm != nil {
		sentiment = strings.TrimSpace(sm[1])
	}
	if rm != nil {
		reply = strings.TrimSpace(rm[1])
	}
	if sm == nil && rm == nil {
		slog.Warn("model output had no recognisable structure, using defaults", "output", text)
	}

	return Result{Sentiment: review.Normalize(sentiment), Reply: reply}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/steamnoodles/sentiment-agents/internal/feedback"
	"github.com/steamnoodles/sentiment-agents/internal/review"
	"github.com/steamnoodles/sentiment-agents/internal/visualize"
)

var sampleReviews = []string{
	"The food was absolutely amazing! The noodles were perfectly cooked and the service was outstanding. Will definitely come back!",
	"Terrible experience. The food was cold, service was slow, and the restaurant was dirty. Very disappointed.",
	"The food was okay, nothing special. Service was average. Might try again sometime.",
	"Love this place! Best noodles in town and such friendly staff. Highly recommend!",
	"Food took forever to arrive and when it did, it was lukewarm. The server seemed annoyed when I asked about the delay.",
}

var sampleQueries = []string{
	"Show sentiment trends for the last 7 days",
	"Generate a plot for the last 14 days",
	"Create visualization for the past month",
	"Show me sentiment analysis for last 3 days",
}

// runFullDemo is the bare-invocation path: the feedback demo followed by the
// visualization demo. A missing API key is fatal here.
func runFullDemo(ctx context.Context) error {
	fmt.Println("SteamNoodles Multi-Agent Framework")
	fmt.Println(strings.Repeat("=", 40))

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	llm, err := newLLM(cfg)
	if err != nil {
		return err
	}
	runFeedbackDemo(ctx, feedback.NewAgent(llm))

	vizAgent, err := newVizAgent(cfg)
	if err != nil {
		return err
	}
	runVizDemo(ctx, vizAgent)

	fmt.Println()
	printDivider()
	fmt.Println("Demo complete! Run 'steamnoodles interactive' for manual testing.")
	return nil
}

func runFeedbackDemo(ctx context.Context, agent *feedback.Agent) {
	printHeader("DEMO: FEEDBACK RESPONSE AGENT")

	for i, text := range sampleReviews {
		printSubheader(fmt.Sprintf("Sample Review %d", i+1))
		fmt.Printf("Customer Review: %s\n", text)

		res := agent.Process(ctx, text)
		fmt.Printf("Sentiment: %s\n", res.Sentiment)
		fmt.Printf("Automated Reply: %s\n", res.Reply)
	}
}

func runVizDemo(ctx context.Context, agent *visualize.Agent) {
	printHeader("DEMO: SENTIMENT VISUALIZATION AGENT")

	for i, query := range sampleQueries {
		printSubheader(fmt.Sprintf("Query %d: %s", i+1, query))
		printSuccess("%s", agent.GenerateVisualization(ctx, query))
	}
}

// --- demo (extended walkthrough) ---

type feedbackCase struct {
	category string
	text     string
	expected review.Sentiment
}

var feedbackCases = []feedbackCase{
	{
		category: "Highly Positive",
		text:     "This place is absolutely incredible! The ramen was the best I've ever had, and the service was exceptional. The staff went above and beyond to make our experience memorable. We'll definitely be regular customers!",
		expected: review.Positive,
	},
	{
		category: "Strongly Negative",
		text:     "Worst dining experience ever. The food was cold, tasteless, and overpriced. Waited 45 minutes for our order, and when it finally arrived, it was completely wrong. The staff was rude and unhelpful. Never coming back!",
		expected: review.Negative,
	},
	{
		category: "Mixed/Neutral",
		text:     "The food was decent and the location is convenient. Service was a bit slow but the staff was polite. Prices are reasonable for the portion size. It's an okay option for a quick lunch.",
		expected: review.Neutral,
	},
	{
		category: "Positive with Specific Praise",
		text:     "Loved the spicy miso ramen! The noodles had perfect texture and the broth was rich and flavorful. The restaurant atmosphere is cozy and welcoming. Great value for money too!",
		expected: review.Positive,
	},
	{
		category: "Negative with Specific Issues",
		text:     "The soup was way too salty and the vegetables were overcooked. Also, the table was sticky and hadn't been properly cleaned. For the price we paid, I expected much better quality.",
		expected: review.Negative,
	},
}

var vizCases = []struct {
	query       string
	description string
}{
	{"Show sentiment trends for the last 7 days", "Recent week analysis"},
	{"Generate visualization for the past 2 weeks", "Two-week trend analysis"},
	{"Create a plot for the last month", "Monthly sentiment overview"},
	{"Show me sentiment patterns for the past 10 days", "Extended recent analysis"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the extended walkthrough of both agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("SteamNoodles Multi-Agent Framework")
		fmt.Println("    Complete System Demonstration")
		fmt.Printf("    %s\n", time.Now().Format("2006-01-02 15:04:05"))

		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			printWarning("Configuration warning: %v", err)
			if !promptContinue("Continue with demo? (y/n): ") {
				return err
			}
		}

		ctx := cmd.Context()
		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}
		fbAgent := feedback.NewAgent(llm)
		vizAgent, err := newVizAgent(cfg)
		if err != nil {
			return err
		}

		demoFeedbackResponses(ctx, fbAgent)
		demoSentimentVisualization(ctx, vizAgent)
		demoIntegration(ctx, fbAgent, vizAgent)

		printHeader("DEMO COMPLETE")
		fmt.Println("All demonstrations finished.")
		fmt.Printf("Output files saved to: ./%s/\n", cfg.OutputDir)
		fmt.Printf("Sample data available at: ./%s\n", cfg.DataFile())
		return nil
	},
}

func promptContinue(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func demoFeedbackResponses(ctx context.Context, agent *feedback.Agent) {
	printHeader("AGENT 1: CUSTOMER FEEDBACK RESPONSE AGENT")
	fmt.Println("This agent analyzes customer sentiment and generates personalized responses.")

	correct := 0
	var total time.Duration
	for i, c := range feedbackCases {
		printSubheader(fmt.Sprintf("Example %d: %s", i+1, c.category))
		fmt.Printf("Customer Review:\n%q\n", c.text)

		start := time.Now()
		res := agent.Process(ctx, c.text)
		elapsed := time.Since(start)
		total += elapsed

		fmt.Printf("\nSentiment: %s\n", strings.ToUpper(string(res.Sentiment)))
		fmt.Printf("Processing Time: %.2fs\n", elapsed.Seconds())
		fmt.Printf("Automated Response:\n%q\n", res.Reply)

		if res.Sentiment == c.expected {
			correct++
			printSuccess("Sentiment Classification: CORRECT")
		} else {
			printFailure("Sentiment Classification: UNEXPECTED (wanted %s)", c.expected)
		}
		printDivider()
	}

	printSubheader("Performance Summary")
	n := len(feedbackCases)
	fmt.Printf("Total Test Cases: %d\n", n)
	fmt.Printf("Correct Sentiment Classifications: %d/%d\n", correct, n)
	fmt.Printf("Accuracy: %.1f%%\n", float64(correct)/float64(n)*100)
	fmt.Printf("Average Processing Time: %.2fs\n", total.Seconds()/float64(n))
}

func demoSentimentVisualization(ctx context.Context, agent *visualize.Agent) {
	printHeader("AGENT 2: SENTIMENT VISUALIZATION AGENT")
	fmt.Println("This agent creates dynamic visualizations based on natural language queries.")

	succeeded := 0
	for i, c := range vizCases {
		printSubheader(fmt.Sprintf("Visualization %d: %s", i+1, c.description))
		fmt.Printf("Query: %q\n", c.query)

		fmt.Println("\nData Summary:")
		fmt.Println(agent.DataSummary(ctx, c.query))

		result := agent.GenerateVisualization(ctx, c.query)
		if path, ok := savedChartPath(result); ok {
			printSuccess("Saved to: %s", path)
			succeeded++
		} else {
			printFailure("%s", result)
		}
		printDivider()
	}

	printSubheader("Visualization Summary")
	fmt.Printf("Queries Processed: %d\n", len(vizCases))
	fmt.Printf("Successful Visualizations: %d\n", succeeded)
	fmt.Printf("Success Rate: %.1f%%\n", float64(succeeded)/float64(len(vizCases))*100)
}

func demoIntegration(ctx context.Context, fbAgent *feedback.Agent, vizAgent *visualize.Agent) {
	printHeader("INTEGRATION DEMO: COMBINED WORKFLOW")

	newReviews := []string{
		"The new spicy ramen is amazing! Best meal I've had in months.",
		"Service was terrible today. Waited forever and food was cold.",
		"Pretty average experience. Food was okay, nothing special.",
	}

	fmt.Printf("Scenario: processing %d new customer reviews.\n", len(newReviews))

	printSubheader("Step 1: Generate Customer Responses")
	results := fbAgent.BatchProcess(ctx, newReviews)
	for i, r := range results {
		fmt.Printf("\nReview %d: %q\n", i+1, r.Feedback)
		fmt.Printf("   Sentiment: %s\n", r.Sentiment)
		fmt.Printf("   Reply: %q\n", r.Reply)
	}

	printSubheader("Step 2: Update Sentiment Dashboard")
	printSuccess("%s", vizAgent.GenerateVisualization(ctx, "Show updated trends for last 7 days"))

	printSubheader("Integration Summary")
	for sentiment, count := range tallySentiments(results) {
		fmt.Printf("   %s: %d reviews\n", sentiment, count)
	}
	printSuccess("All %d customers received automated responses", len(newReviews))
}

// savedChartPath extracts the file path from a visualization result, whether
// the agent returned a bare path or the plot tool's saved-to message.
func savedChartPath(result string) (string, bool) {
	if strings.HasSuffix(result, ".png") {
		return strings.TrimPrefix(result, "Visualization saved to "), true
	}
	return "", false
}

func tallySentiments(results []feedback.BatchResult) map[review.Sentiment]int {
	counts := make(map[review.Sentiment]int)
	for _, r := range results {
		counts[r.Sentiment]++
	}
	return counts
}

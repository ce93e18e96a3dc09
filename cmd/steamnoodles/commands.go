package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/steamnoodles/sentiment-agents/internal/config"
	"github.com/steamnoodles/sentiment-agents/internal/dataset"
	"github.com/steamnoodles/sentiment-agents/internal/feedback"
	"github.com/steamnoodles/sentiment-agents/internal/sample"
	"github.com/steamnoodles/sentiment-agents/internal/visualize"
)

// loadConfig loads configuration; a missing API key is fatal for the CLI
// subcommands (the demo has its own warn-and-prompt path).
func loadConfig(requireKey bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if requireKey {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLLM(cfg *config.Config) (*openai.LLM, error) {
	token := cfg.OpenAIAPIKey
	if token == "" {
		// Keeps construction working on the demo's continue-anyway path;
		// calls will fail and the agents degrade to their defaults.
		token = "unset"
	}
	llm, err := openai.New(openai.WithToken(token), openai.WithModel(cfg.OpenAIModel))
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return llm, nil
}

// ensureData generates the sample dataset on demand so a missing data file
// never fails a command.
func ensureData(cfg *config.Config) (string, error) {
	path := cfg.DataFile()
	if !dataset.Exists(path) {
		printStep("Generating sample data...")
		opts := sample.Options{Count: cfg.SampleSize, DaysBack: cfg.DaysBack}
		if err := sample.GenerateFile(path, opts); err != nil {
			return "", fmt.Errorf("generating sample data: %w", err)
		}
		printSuccess("Sample data generated")
	}
	return path, nil
}

func newVizAgent(cfg *config.Config) (*visualize.Agent, error) {
	path, err := ensureData(cfg)
	if err != nil {
		return nil, err
	}
	llm, err := newLLM(cfg)
	if err != nil {
		return nil, err
	}
	return visualize.NewAgent(llm, path, cfg.OutputDir)
}

// --- feedback ---

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Run the feedback response agent over sample reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}
		runFeedbackDemo(cmd.Context(), feedback.NewAgent(llm))
		return nil
	},
}

// --- viz ---

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Run the sentiment visualization agent over sample queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		agent, err := newVizAgent(cfg)
		if err != nil {
			return err
		}
		runVizDemo(cmd.Context(), agent)
		return nil
	},
}

// --- generate ---

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the sample reviews dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		daysBack, _ := cmd.Flags().GetInt("days-back")

		// No LLM involved, so no API key needed here.
		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}
		if count <= 0 {
			count = cfg.SampleSize
		}
		if daysBack <= 0 {
			daysBack = cfg.DaysBack
		}

		path := cfg.DataFile()
		opts := sample.Options{Count: count, DaysBack: daysBack}
		if err := sample.GenerateFile(path, opts); err != nil {
			return err
		}
		printSuccess("Generated %d reviews over %d days at %s", count, daysBack, path)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("count", 0, "number of reviews to generate")
	generateCmd.Flags().Int("days-back", 0, "size of the generation window in days")
}

// --- interactive ---

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Menu-driven manual testing of both agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}
		fbAgent := feedback.NewAgent(llm)
		vizAgent, err := newVizAgent(cfg)
		if err != nil {
			return err
		}
		runInteractive(cmd.Context(), os.Stdin, fbAgent, vizAgent)
		return nil
	},
}

func runInteractive(ctx context.Context, in io.Reader, fbAgent *feedback.Agent, vizAgent *visualize.Agent) {
	printHeader("INTERACTIVE MODE")
	fmt.Println("1. Test Feedback Response Agent")
	fmt.Println("2. Test Sentiment Visualization Agent")
	fmt.Println("3. Exit")

	reader := bufio.NewReader(in)
	for {
		fmt.Print("\nEnter your choice (1-3): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			printSubheader("Feedback Response Agent")
			fmt.Print("Enter customer review: ")
			review, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			review = strings.TrimSpace(review)
			if review == "" {
				fmt.Println("Please enter a valid review.")
				continue
			}
			res := fbAgent.Process(ctx, review)
			fmt.Printf("\nSentiment: %s\n", res.Sentiment)
			fmt.Printf("Automated Reply: %s\n", res.Reply)

		case "2":
			printSubheader("Sentiment Visualization Agent")
			fmt.Print("Enter date range query (e.g., 'last 7 days'): ")
			query, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			query = strings.TrimSpace(query)
			if query == "" {
				fmt.Println("Please enter a valid query.")
				continue
			}
			printSuccess("%s", vizAgent.GenerateVisualization(ctx, query))

		case "3":
			fmt.Println("Goodbye!")
			return

		default:
			fmt.Println("Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

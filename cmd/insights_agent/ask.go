package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmarket-insights/internal/config"
	"github.com/jonathan/jobmarket-insights/internal/dataset"
	"github.com/jonathan/jobmarket-insights/internal/llm"
	"github.com/jonathan/jobmarket-insights/internal/observability"
	"github.com/jonathan/jobmarket-insights/internal/pipeline"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the AI job market dataset",
	Long:  "Classifies the question, computes the matching statistic from the dataset and asks the Gemini API for a prose answer. Without a question, prints the example questions.",
	RunE:  runAsk,
}

var (
	askDataPath   string
	askConfigPath string
	askAPIKey     string
	askModel      string
	askVerbose    bool
)

func init() {
	askCmd.Flags().StringVar(&askDataPath, "data", "", "Path to the dataset CSV (default: DATA_PATH or ai_job_market.csv)")
	askCmd.Flags().StringVar(&askConfigPath, "config", "", "Path to a JSON config file")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	askCmd.Flags().StringVar(&askModel, "model", "", "Answer model name (overrides the default tier model)")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print detected intent and computed statistic")

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	printer := observability.NewPrinter(os.Stdout)

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		printer.PrintExampleQuestions()
		return nil
	}

	cfg, err := resolveConfig(askConfigPath, config.Config{
		DataPath: askDataPath,
		APIKey:   askAPIKey,
		Model:    askModel,
		Verbose:  askVerbose,
	})
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	answer, qc, err := pipeline.Answer(ctx, ds, client, question)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintDatasetHighlights(ds)
		printer.PrintQueryContext(qc)
	}

	fmt.Println(answer)
	return nil
}

// resolveConfig merges flag values over an optional config file over the
// environment.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	merged := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}

	merged = merged.MergeWithDefaults(config.FromEnv())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

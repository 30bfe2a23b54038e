package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmarket-insights/internal/config"
	"github.com/jonathan/jobmarket-insights/internal/dataset"
	"github.com/jonathan/jobmarket-insights/internal/llm"
	"github.com/jonathan/jobmarket-insights/internal/server"
	"github.com/jonathan/jobmarket-insights/internal/tracker"
)

var (
	servePort       int
	serveDataPath   string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the question pipeline, ticket creation, example questions and dataset highlights.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataPath, "data", "", "Path to the dataset CSV (default: DATA_PATH or ai_job_market.csv)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, config.Config{
		DataPath: serveDataPath,
		Port:     servePort,
	})
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
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

	trackerClient := tracker.New(tracker.Config{
		Token: cfg.GitHubToken,
		Repo:  cfg.GitHubRepo,
	})

	srv := server.New(server.Config{Port: cfg.Port}, ds, client, trackerClient)
	return srv.Start()
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmarket-insights/internal/tracker"
)

var (
	ticketTitle string
	ticketBody  string
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "File a support ticket against the configured GitHub repository",
	RunE:  runTicket,
}

func init() {
	ticketCmd.Flags().StringVar(&ticketTitle, "title", "", "Issue title (required)")
	ticketCmd.Flags().StringVar(&ticketBody, "body", "", "Issue description (required)")

	rootCmd.AddCommand(ticketCmd)
}

func runTicket(_ *cobra.Command, _ []string) error {
	title := strings.TrimSpace(ticketTitle)
	body := strings.TrimSpace(ticketBody)
	if title == "" || body == "" {
		return fmt.Errorf("both --title and --body are required")
	}

	client := tracker.New(tracker.Config{
		Token: os.Getenv("GITHUB_TOKEN"),
		Repo:  os.Getenv("GITHUB_REPO"),
	})

	url, err := client.CreateIssue(context.Background(), title, body)
	if err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	fmt.Printf("Issue created successfully: %s\n", url)
	return nil
}

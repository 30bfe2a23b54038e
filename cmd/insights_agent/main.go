// Package main provides the entry point for the AI job market insights agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insights_agent",
	Short: "AI job market insights agent",
	Long:  "Answers natural-language questions about the AI job market dataset with data-driven statistics enhanced by the Gemini API, and files support tickets against GitHub.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the Career Portal HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_portal",
	Short: "Career Portal HTTP API Server",
	Long:  "Career Portal validates resume submissions, enhances them with AI, renders them to PDF and emails the result, exposing the whole pipeline via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

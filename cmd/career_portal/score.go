package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dchen/career-portal/internal/observability"
	"github.com/dchen/career-portal/internal/validation"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the completion score for a resume document JSON file",
	RunE:  runScore,
}

var (
	scoreInputFile string
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume document JSON file (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score bar instead of a bare number")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(scoreInputFile)
	if err != nil {
		return err
	}

	score := validation.CompletionScore(doc)

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintCompletionScore(score)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, score)
	}
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dchen/career-portal/internal/observability"
	"github.com/dchen/career-portal/internal/schemas"
	"github.com/dchen/career-portal/internal/types"
	"github.com/dchen/career-portal/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document JSON file",
	Long:  "Run the full validation rule set over a resume document JSON file and report errors, warnings, completion score and recommendations.",
	RunE:  runValidate,
}

var (
	validateInputFile string
	validateVerbose   bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to resume document JSON file (required)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a formatted summary instead of raw JSON")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

// loadDocument reads and shape-checks a resume document from a JSON file.
func loadDocument(path string) (*types.ResumeDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(raw); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, fmt.Errorf("document does not match the resume schema: %w", err)
		}
		return nil, err
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

func runValidate(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(validateInputFile)
	if err != nil {
		return err
	}

	summary := validation.Summarize(doc)

	if validateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintValidationSummary(&summary)
		printer.PrintCompletionScore(summary.CompletionScore)
		printer.PrintRecommendations(summary.Recommendations)
	} else {
		jsonBytes, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if !summary.IsValid {
		// Non-zero exit so scripts can gate on validity
		return fmt.Errorf("resume has %d validation errors", summary.ErrorCount)
	}
	return nil
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dchen/career-portal/internal/progress"
	"github.com/dchen/career-portal/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padBoxLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padBoxLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padBoxLine truncates and pads a line to the box content width. Widths are
// measured in runes so bar glyphs and icons keep the border aligned.
func padBoxLine(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		runes = append(runes[:boxWidth-7], '.', '.', '.')
	}
	return string(runes) + strings.Repeat(" ", boxWidth-4-len(runes))
}

// PrintValidationSummary outputs a human-readable summary of a validation run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationSummary(summary *types.ValidationSummary) {
	if summary == nil {
		return
	}

	if summary.IsValid && !summary.HasWarnings {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", padBoxLine("✅ RESUME IS VALID"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", summary.ErrorCount))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", summary.WarningCount))

	if summary.ErrorCount > 0 {
		sb.WriteString("\n")
		p.writeIssues(&sb, "Errors:", summary.Errors)
	}
	if summary.WarningCount > 0 {
		sb.WriteString("\n")
		p.writeIssues(&sb, "Warnings:", summary.Warnings)
	}

	p.printBox("VALIDATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// writeIssues appends up to maxItemsToShow field issues in sorted field order.
func (p *Printer) writeIssues(sb *strings.Builder, title string, issues types.FieldIssues) {
	fields := make([]string, 0, len(issues))
	for field := range issues {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	sb.WriteString(title + "\n")
	count := min(len(fields), maxItemsToShow)
	for i := 0; i < count; i++ {
		field := fields[i]
		message := strings.Join(issues[field], "; ")
		if len(message) > 40 {
			message = message[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", field, message))
	}
	if len(fields) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fields)-maxItemsToShow))
	}
}

// PrintCompletionScore outputs the completion score as a bar.
func (p *Printer) PrintCompletionScore(score int) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	const barWidth = 40
	filled := score * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	p.printBox("COMPLETION SCORE", fmt.Sprintf("%s %d%%", bar, score))
}

// PrintRecommendations outputs the top prioritized recommendations.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		message := rec.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", rec.Priority, message))
		if rec.Action != "" {
			action := rec.Action
			if len(action) > 45 {
				action = action[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  → %s\n", action))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintProgress outputs a one-line progress update for a pipeline step.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(state progress.State) {
	switch {
	case state.Error != "":
		fmt.Fprintf(p.out, "✗ [%3d%%] %s: %s\n", state.Progress, state.CurrentStep, state.Error)
	case state.Success:
		fmt.Fprintf(p.out, "✓ [%3d%%] %s\n", state.Progress, state.Message)
	default:
		fmt.Fprintf(p.out, "  [%3d%%] %s\n", state.Progress, state.Message)
	}
}

package validation

import (
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// ValidateResume runs every section validator over the document and merges
// their findings. Section key spaces do not collide by construction. The
// document is never mutated; calling twice on the same document yields
// identical results.
func ValidateResume(doc *types.ResumeDocument) types.ValidationResult {
	merged := newResult()
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	merged.merge(ValidatePersonalInfo(doc.PersonalInfo))
	merged.merge(ValidateWorkExperience(doc.WorkExperience))
	merged.merge(ValidateEducation(doc.Education))
	merged.merge(ValidateSkills(doc.Skills))
	merged.merge(ValidateAchievements(doc.Achievements))

	if strings.TrimSpace(doc.SelectedTemplate) == "" {
		merged.addError("template", "Please select a resume template")
	}

	return types.ValidationResult{
		Errors:      merged.Errors,
		Warnings:    merged.Warnings,
		IsValid:     len(merged.Errors) == 0,
		HasWarnings: len(merged.Warnings) > 0,
	}
}

// Summarize wraps ValidateResume with issue counts, the completion score and
// prioritized recommendations.
func Summarize(doc *types.ResumeDocument) types.ValidationSummary {
	result := ValidateResume(doc)
	summary := types.ValidationSummary{
		ValidationResult: result,
		ErrorCount:       len(result.Errors),
		WarningCount:     len(result.Warnings),
		CompletionScore:  CompletionScore(doc),
	}
	summary.Recommendations = Recommendations(doc, summary)
	return summary
}

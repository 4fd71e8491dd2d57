package validation

import (
	"fmt"

	"github.com/dchen/career-portal/internal/types"
)

// Recommendation guard thresholds.
const (
	recommendScoreBelow      = 70
	recommendExperienceBelow = 2
	recommendSkillsBelow     = 8
)

// Recommendations derives the fixed, ordered recommendation list from the
// document and its validation summary. Each entry is present whenever its
// guard holds; the guards are not mutually exclusive.
func Recommendations(doc *types.ResumeDocument, summary types.ValidationSummary) []types.Recommendation {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	var recs []types.Recommendation

	if summary.ErrorCount > 0 {
		recs = append(recs, types.Recommendation{
			Type:     "errors",
			Priority: "high",
			Message:  fmt.Sprintf("Fix %d validation error(s) before submitting", summary.ErrorCount),
			Action:   "fix_errors",
		})
	}
	if summary.CompletionScore < recommendScoreBelow {
		recs = append(recs, types.Recommendation{
			Type:     "completeness",
			Priority: "medium",
			Message:  fmt.Sprintf("Your resume is %d%% complete; fill in more sections to strengthen it", summary.CompletionScore),
			Action:   "complete_sections",
		})
	}
	if len(doc.WorkExperience) < recommendExperienceBelow {
		recs = append(recs, types.Recommendation{
			Type:     "experience",
			Priority: "medium",
			Message:  "Add more work experience entries to show career progression",
			Action:   "add_experience",
		})
	}
	if len(doc.Skills) < recommendSkillsBelow {
		recs = append(recs, types.Recommendation{
			Type:     "skills",
			Priority: "medium",
			Message:  "Add more skills to improve keyword matching",
			Action:   "add_skills",
		})
	}
	if len(doc.Achievements) == 0 {
		recs = append(recs, types.Recommendation{
			Type:     "achievements",
			Priority: "low",
			Message:  "Add achievements to make your resume stand out",
			Action:   "add_achievements",
		})
	}
	if summary.WarningCount > 0 {
		recs = append(recs, types.Recommendation{
			Type:     "warnings",
			Priority: "low",
			Message:  fmt.Sprintf("Review %d suggestion(s) to polish your resume", summary.WarningCount),
			Action:   "review_warnings",
		})
	}

	return recs
}

package validation

import (
	"fmt"
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// ValidateAchievements evaluates the achievements section. An empty list is a
// warning, not an error: achievements are optional but encouraged. Per-entry
// findings are keyed "achievement_<index>".
func ValidateAchievements(entries []types.Achievement) Result {
	result := newResult()

	if len(entries) == 0 {
		result.addWarning("achievements", "Adding achievements makes your resume stand out")
		return result
	}
	if len(entries) > maxAchievements {
		result.addWarning("achievements", fmt.Sprintf("Consider keeping your %d strongest achievements", maxAchievements))
	}

	for i, entry := range entries {
		key := fmt.Sprintf("achievement_%d", i)
		text := strings.TrimSpace(entry.Body())
		if text == "" {
			result.addError(key, "Achievement text is required")
			continue
		}
		if len(text) < achievementMinLen || len(text) > achievementMaxLen {
			result.addError(key, fmt.Sprintf("Achievement must be between %d and %d characters", achievementMinLen, achievementMaxLen))
			continue
		}
		if !quantifierPattern.MatchString(text) {
			result.addWarning(key, "Consider quantifying this achievement with numbers or percentages")
		}
	}

	return result
}

package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dchen/career-portal/internal/types"
)

// minEmploymentDuration is the duration below which an entry draws a
// "very short stint" warning.
const minEmploymentDuration = 28 * 24 * time.Hour

// ValidateWorkExperience evaluates the employment history section. Per-entry
// findings are keyed "experience_<index>" so the presentation layer can
// address the originating array element.
func ValidateWorkExperience(entries []types.WorkExperience) Result {
	result := newResult()

	if len(entries) == 0 {
		result.addError("workExperience", "At least one work experience entry is required")
		return result
	}
	if len(entries) < 2 {
		result.addWarning("workExperience", "Consider adding more work experience entries")
	}

	for i, entry := range entries {
		key := fmt.Sprintf("experience_%d", i)
		validateExperienceEntry(&result, key, entry)
	}

	return result
}

func validateExperienceEntry(result *Result, key string, entry types.WorkExperience) {
	validateOrgField(result, key, entry.Company, "Company name", companyMinLen, companyMaxLen)
	validateOrgField(result, key, entry.Position, "Position title", positionMinLen, positionMaxLen)
	validateExperienceDates(result, key, entry)
	validateDescription(result, key, entry.Description)

	location := strings.TrimSpace(entry.Location)
	if location == "" {
		result.addWarning(key, "Adding a location is recommended")
	} else if len(location) < locationMinLen || len(location) > locationMaxLen {
		result.addError(key, "Location must be between 2 and 100 characters")
	}
}

// validateOrgField applies the shared company/position/institution rules:
// presence, length bounds, restricted character set, placeholder rejection.
func validateOrgField(result *Result, key, raw, label string, minLen, maxLen int) {
	value := strings.TrimSpace(raw)
	if value == "" {
		result.addError(key, label+" is required")
		return
	}
	if len(value) < minLen || len(value) > maxLen {
		result.addError(key, fmt.Sprintf("%s must be between %d and %d characters", label, minLen, maxLen))
		return
	}
	if !orgPattern.MatchString(value) {
		result.addError(key, label+" contains invalid characters")
		return
	}
	if containsPlaceholder(value, placeholderWords) {
		result.addError(key, label+" looks like a placeholder")
	}
}

func validateExperienceDates(result *Result, key string, entry types.WorkExperience) {
	start := strings.TrimSpace(entry.StartDate)
	if start == "" {
		result.addError(key, "Start date is required")
	} else if year, ok := yearOf(start); !ok || year < minGraduationYear || year > maxValidYear() {
		result.addError(key, "Start date year must be between 1950 and "+fmt.Sprint(maxValidYear()))
	}

	end := strings.TrimSpace(entry.EndDate)
	if end == "" {
		if !entry.IsCurrentJob {
			result.addError(key, "End date is required unless this is your current job")
		}
		return
	}

	startTime, startOK := parseDate(start)
	endTime, endOK := parseDate(end)
	if !startOK || !endOK {
		return
	}
	if !endTime.After(startTime) {
		result.addError(key, "End date must be after start date")
		return
	}
	if endTime.Sub(startTime) < minEmploymentDuration {
		result.addWarning(key, "This position lasted less than a month")
	}
}

func validateDescription(result *Result, key, raw string) {
	description := strings.TrimSpace(raw)
	if description == "" {
		result.addError(key, "Description is required")
		return
	}
	if len(description) < descriptionMinLen || len(description) > descriptionMaxLen {
		result.addError(key, "Description must be between 50 and 1000 characters")
		return
	}
	if countSentences(description) < 2 {
		result.addWarning(key, "Consider expanding the description to at least two sentences")
	}
	if !containsActionVerb(description) {
		result.addWarning(key, "Consider starting bullet points with action verbs like 'developed' or 'led'")
	}
}

// countSentences counts non-empty fragments after splitting on sentence
// terminators.
func countSentences(text string) int {
	count := 0
	for _, fragment := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

func containsActionVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

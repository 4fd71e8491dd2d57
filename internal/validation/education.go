package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// ValidateEducation evaluates the education section. Per-entry findings are
// keyed "education_<index>".
func ValidateEducation(entries []types.Education) Result {
	result := newResult()

	if len(entries) == 0 {
		result.addError("education", "At least one education entry is required")
		return result
	}

	for i, entry := range entries {
		key := fmt.Sprintf("education_%d", i)
		validateEducationEntry(&result, key, entry)
	}

	return result
}

func validateEducationEntry(result *Result, key string, entry types.Education) {
	validateOrgField(result, key, entry.Institution, "Institution name", institutionMinLen, institutionMaxLen)
	validateDegree(result, key, entry.Degree)
	validateOrgField(result, key, entry.Field, "Field of study", fieldMinLen, fieldMaxLen)

	if graduation := strings.TrimSpace(entry.GraduationDate); graduation != "" {
		if year, ok := yearOf(graduation); !ok || year < minGraduationYear || year > maxValidYear() {
			result.addError(key, "Graduation year must be between 1950 and "+fmt.Sprint(maxValidYear()))
		}
	}

	validateGPA(result, key, entry.GPA)
}

func validateDegree(result *Result, key, raw string) {
	degree := strings.TrimSpace(raw)
	if degree == "" {
		result.addError(key, "Degree is required")
		return
	}
	if len(degree) < degreeMinLen || len(degree) > degreeMaxLen {
		result.addError(key, "Degree must be between 2 and 100 characters")
		return
	}
	if !orgPattern.MatchString(degree) {
		result.addError(key, "Degree contains invalid characters")
		return
	}
	if !looksLikeDegree(degree) {
		result.addWarning(key, "Degree name is not recognized; double-check the spelling")
	}
}

// looksLikeDegree matches the lowercased alphanumeric-only form of the degree
// against the recognized keyword list, so "B.Sc." and "bsc" both match.
func looksLikeDegree(degree string) bool {
	normalized := alphanumericOnly.ReplaceAllString(strings.ToLower(degree), "")
	for _, keyword := range degreeKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

func validateGPA(result *Result, key, raw string) {
	gpa := strings.TrimSpace(raw)
	if gpa == "" {
		return
	}
	value, err := strconv.ParseFloat(gpa, 64)
	if err != nil || value < gpaMin || value > gpaMax {
		result.addError(key, "GPA must be a number between 0.0 and 4.0")
		return
	}
	if value < gpaWarnBelow {
		result.addWarning(key, "Consider omitting a GPA below 3.0")
	}
}

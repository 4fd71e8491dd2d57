package validation

import (
	"fmt"
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// ValidateSkills evaluates the skills section. Per-skill problems are
// aggregated into a single "skillValidation" error list rather than per-index
// keys; duplicates are reported once under "duplicateSkills".
func ValidateSkills(skills []types.Skill) Result {
	result := newResult()

	if len(skills) < minSkills {
		result.addError("skills", fmt.Sprintf("Please add at least %d skills", minSkills))
	}
	if len(skills) > maxSkillsSuggested {
		result.addWarning("skills", fmt.Sprintf("Consider trimming your skills to the strongest %d", maxSkillsSuggested))
	}

	seen := map[string]string{} // normalized name -> first original spelling
	var duplicates []string
	technical := 0

	for i, skill := range skills {
		name := strings.TrimSpace(skill.Name)
		if issue := skillNameIssue(i, name); issue != "" {
			result.addError("skillValidation", issue)
		} else {
			normalized := strings.ToLower(name)
			if original, dup := seen[normalized]; dup {
				duplicates = append(duplicates, original)
			} else {
				seen[normalized] = name
			}
		}

		if skill.Level != "" && !skillLevels[strings.ToLower(skill.Level)] {
			result.addError("skillValidation",
				fmt.Sprintf("Skill %d has an invalid level %q; use beginner, intermediate, advanced or expert", i+1, skill.Level))
		}

		if strings.EqualFold(strings.TrimSpace(skill.Category), "technical") {
			technical++
		}
	}

	if len(duplicates) > 0 {
		result.addError("duplicateSkills",
			"Duplicate skills found: "+strings.Join(dedupe(duplicates), ", "))
	}

	if technical < minTechnicalSkills {
		result.addWarning("skills", fmt.Sprintf("Consider listing at least %d technical skills", minTechnicalSkills))
	}

	return result
}

// skillNameIssue returns a problem description for the i-th skill name, or ""
// if the name passes all checks.
func skillNameIssue(i int, name string) string {
	switch {
	case name == "":
		return fmt.Sprintf("Skill %d is missing a name", i+1)
	case len(name) < skillNameMinLen || len(name) > skillNameMaxLen:
		return fmt.Sprintf("Skill %d must be between %d and %d characters", i+1, skillNameMinLen, skillNameMaxLen)
	case !skillNamePattern.MatchString(name):
		return fmt.Sprintf("Skill %d contains invalid characters", i+1)
	case isGenericSkill(name):
		return fmt.Sprintf("Skill %d (%q) is too generic", i+1, name)
	}
	return ""
}

func isGenericSkill(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range genericSkillTerms {
		if lower == term {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

package validation

import (
	"testing"

	"github.com/dchen/career-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

func validSkills() []types.Skill {
	return []types.Skill{
		{Name: "Go", Category: "technical", Level: "expert"},
		{Name: "Python", Category: "technical", Level: "advanced"},
		{Name: "PostgreSQL", Category: "technical", Level: "intermediate"},
		{Name: "Communication", Category: "soft", Level: "advanced"},
		{Name: "Leadership", Category: "soft", Level: "intermediate"},
	}
}

func TestValidateSkillsMinimumCount(t *testing.T) {
	t.Run("four skills is an error", func(t *testing.T) {
		result := ValidateSkills(validSkills()[:4])

		assert.NotEmpty(t, result.Errors["skills"])
	})

	t.Run("five skills is enough", func(t *testing.T) {
		result := ValidateSkills(validSkills())

		assert.Empty(t, result.Errors["skills"])
		assert.Empty(t, result.Errors)
	})
}

func TestValidateSkillsTooMany(t *testing.T) {
	skills := make([]types.Skill, 0, 31)
	for _, s := range validSkills() {
		skills = append(skills, s)
	}
	names := []string{
		"Java", "Rust", "C++", "Ruby", "Kotlin", "Swift", "Scala", "Erlang",
		"Elixir", "Haskell", "Perl", "Lua", "Docker", "Kubernetes", "Terraform",
		"Ansible", "Redis", "Kafka", "MySQL", "MongoDB", "GraphQL", "gRPC",
		"Linux", "Git", "Bash", "AWS",
	}
	for _, n := range names {
		skills = append(skills, types.Skill{Name: n, Category: "technical", Level: "intermediate"})
	}

	result := ValidateSkills(skills)

	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings["skills"])
}

func TestValidateSkillsDuplicates(t *testing.T) {
	skills := append(validSkills(), types.Skill{Name: "javascript", Category: "technical", Level: "advanced"})
	skills = append(skills, types.Skill{Name: "JavaScript", Category: "technical", Level: "expert"})

	result := ValidateSkills(skills)

	if assert.NotEmpty(t, result.Errors["duplicateSkills"]) {
		assert.Contains(t, result.Errors["duplicateSkills"][0], "javascript")
	}
}

func TestValidateSkillsDuplicatesReportFirstSpelling(t *testing.T) {
	skills := append(validSkills(), types.Skill{Name: "JavaScript", Category: "technical", Level: "expert"})
	skills = append(skills, types.Skill{Name: "javascript", Category: "technical", Level: "advanced"})

	result := ValidateSkills(skills)

	if assert.NotEmpty(t, result.Errors["duplicateSkills"]) {
		assert.Contains(t, result.Errors["duplicateSkills"][0], "JavaScript")
	}
}

func TestValidateSkillsAggregatedIssues(t *testing.T) {
	skills := append(validSkills(),
		types.Skill{Name: "", Category: "technical", Level: "expert"},
		types.Skill{Name: "X", Category: "technical", Level: "advanced"},
		types.Skill{Name: "stuff", Category: "technical", Level: "advanced"},
		types.Skill{Name: "Java", Category: "technical", Level: "guru"},
	)

	result := ValidateSkills(skills)

	// Missing name, too-short name, generic term, invalid level: one message each.
	assert.Len(t, result.Errors["skillValidation"], 4)
}

func TestValidateSkillsLevelOptional(t *testing.T) {
	skills := validSkills()
	skills[0].Level = ""

	result := ValidateSkills(skills)

	assert.Empty(t, result.Errors["skillValidation"])
}

func TestValidateSkillsTechnicalWarning(t *testing.T) {
	skills := []types.Skill{
		{Name: "Communication", Category: "soft", Level: "advanced"},
		{Name: "Leadership", Category: "soft", Level: "advanced"},
		{Name: "Teamwork", Category: "soft", Level: "advanced"},
		{Name: "Negotiation", Category: "soft", Level: "advanced"},
		{Name: "Public Speaking", Category: "soft", Level: "advanced"},
	}

	result := ValidateSkills(skills)

	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings["skills"])
}

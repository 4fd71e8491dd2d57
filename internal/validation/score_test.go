package validation

import (
	"testing"

	"github.com/dchen/career-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCompletionScoreEmptyDocument(t *testing.T) {
	assert.Zero(t, CompletionScore(&types.ResumeDocument{}))
	assert.Zero(t, CompletionScore(nil))
}

func TestCompletionScoreFullDocument(t *testing.T) {
	doc := validDocument()
	// 30 personal + 25 experience + 20 education + 10 skills + 5 achievements.
	assert.Equal(t, 90, CompletionScore(doc))

	for i := 0; i < 5; i++ {
		doc.Skills = append(doc.Skills, types.Skill{Name: "Extra", Category: "technical", Level: "beginner"})
	}
	doc.Achievements = append(doc.Achievements,
		types.Achievement{Text: "Shipped 3 major features ahead of schedule in 2023"},
		types.Achievement{Text: "Mentored 4 junior engineers to promotion in 18 months"},
	)

	assert.Equal(t, 100, CompletionScore(doc))
}

func TestCompletionScoreNeverExceeds100(t *testing.T) {
	doc := validDocument()
	for i := 0; i < 20; i++ {
		doc.Skills = append(doc.Skills, types.Skill{Name: "Extra"})
		doc.Achievements = append(doc.Achievements, types.Achievement{Text: "Another quantified win worth 10% improvement"})
		doc.WorkExperience = append(doc.WorkExperience, validExperience())
	}

	assert.LessOrEqual(t, CompletionScore(doc), 100)
}

func TestCompletionScoreLinkedInMonotonic(t *testing.T) {
	doc := validDocument()
	doc.PersonalInfo.LinkedIn = ""
	without := CompletionScore(doc)

	doc.PersonalInfo.LinkedIn = "https://linkedin.com/in/janedoe"
	with := CompletionScore(doc)

	assert.Equal(t, without+2, with)
}

func TestCompletionScoreIgnoresValidity(t *testing.T) {
	doc := validDocument()
	score := CompletionScore(doc)

	// Invalid but present values keep their presence credit.
	doc.PersonalInfo.FullName = "J"
	doc.PersonalInfo.Email = "not-an-email"
	assert.Equal(t, score, CompletionScore(doc))
}

func TestCompletionScorePartialCredit(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ResumeDocument)
		delta  int
	}{
		{"Drop portfolio", func(d *types.ResumeDocument) { d.PersonalInfo.Portfolio = "" }, -2},
		{"Drop phone", func(d *types.ResumeDocument) { d.PersonalInfo.Phone = " " }, -6},
		{"Drop second experience", func(d *types.ResumeDocument) { d.WorkExperience = d.WorkExperience[:1] }, -5},
		{"Drop all education", func(d *types.ResumeDocument) { d.Education = nil }, -20},
		{"Drop one skill", func(d *types.ResumeDocument) { d.Skills = d.Skills[:4] }, -10},
		{"Drop achievements", func(d *types.ResumeDocument) { d.Achievements = nil }, -5},
	}

	base := CompletionScore(validDocument())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			assert.Equal(t, base+tt.delta, CompletionScore(doc))
		})
	}
}

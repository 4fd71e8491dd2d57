package validation

import (
	"strconv"
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// Completion score weights. Personal-info points are awarded purely on
// trim-presence, not validity: the score measures how much is filled in, not
// whether it passes validation.
const (
	scoreFullName  = 8
	scoreEmail     = 8
	scorePhone     = 6
	scoreAddress   = 4
	scoreLinkedIn  = 2
	scorePortfolio = 2

	scoreAnyExperience      = 15
	scoreMultipleExperience = 5
	scoreRichDescription    = 5
	richDescriptionLen      = 100

	scoreAnyEducation = 15
	scoreStrongGPA    = 5

	scoreEnoughSkills = 10
	scoreManySkills   = 5
	manySkillsCount   = 10

	scoreAnyAchievements     = 5
	scoreSeveralAchievements = 5
	severalAchievementsCount = 3

	maxScore = 100
)

// CompletionScore computes the 0-100 completeness heuristic for a document.
// It is independent of validity and monotonic in filled-in content.
func CompletionScore(doc *types.ResumeDocument) int {
	if doc == nil {
		return 0
	}

	score := 0

	info := doc.PersonalInfo
	for _, part := range []struct {
		value  string
		points int
	}{
		{info.FullName, scoreFullName},
		{info.Email, scoreEmail},
		{info.Phone, scorePhone},
		{info.Address, scoreAddress},
		{info.LinkedIn, scoreLinkedIn},
		{info.Portfolio, scorePortfolio},
	} {
		if strings.TrimSpace(part.value) != "" {
			score += part.points
		}
	}

	if len(doc.WorkExperience) > 0 {
		score += scoreAnyExperience
		if len(doc.WorkExperience) >= 2 {
			score += scoreMultipleExperience
		}
		for _, entry := range doc.WorkExperience {
			if len(entry.Description) >= richDescriptionLen {
				score += scoreRichDescription
				break
			}
		}
	}

	if len(doc.Education) > 0 {
		score += scoreAnyEducation
		for _, entry := range doc.Education {
			if gpa, err := strconv.ParseFloat(strings.TrimSpace(entry.GPA), 64); err == nil && gpa >= gpaWarnBelow {
				score += scoreStrongGPA
				break
			}
		}
	}

	if len(doc.Skills) >= minSkills {
		score += scoreEnoughSkills
		if len(doc.Skills) >= manySkillsCount {
			score += scoreManySkills
		}
	}

	if len(doc.Achievements) > 0 {
		score += scoreAnyAchievements
		if len(doc.Achievements) >= severalAchievementsCount {
			score += scoreSeveralAchievements
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

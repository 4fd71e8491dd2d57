// Package validation implements the rule-driven resume validation engine: a
// pure, synchronous evaluator that classifies every field of a resume document
// as missing, malformed, suspicious or good, and derives a completion score
// and prioritized recommendations.
package validation

import "regexp"

// Field length limits.
const (
	fullNameMinLen = 2
	fullNameMaxLen = 100
	emailMaxLen    = 254
	phoneMinDigits = 7
	phoneMaxDigits = 15
	addressMinLen  = 10
	addressMaxLen  = 200

	companyMinLen     = 2
	companyMaxLen     = 100
	positionMinLen    = 2
	positionMaxLen    = 100
	descriptionMinLen = 50
	descriptionMaxLen = 1000
	locationMinLen    = 2
	locationMaxLen    = 100

	institutionMinLen = 2
	institutionMaxLen = 150
	degreeMinLen      = 2
	degreeMaxLen      = 100
	fieldMinLen       = 2
	fieldMaxLen       = 100

	skillNameMinLen = 2
	skillNameMaxLen = 50

	achievementMinLen = 20
	achievementMaxLen = 300

	minSkills          = 5
	maxSkillsSuggested = 30
	minTechnicalSkills = 3
	maxAchievements    = 10

	minGraduationYear = 1950
	gpaMin            = 0.0
	gpaMax            = 4.0
	gpaWarnBelow      = 3.0
)

// Character-set and shape patterns. Go's RE2 has no backreferences, so
// repeated-character detection lives in hasRepeatedRun instead.
var (
	namePattern       = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ' .-]+$`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	autoLocalPattern  = regexp.MustCompile(`^[a-z]+[0-9]{4,}`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9 ()-]+$`)
	addressPattern    = regexp.MustCompile(`^[A-Za-z0-9\s,.#/-]+$`)
	orgPattern        = regexp.MustCompile(`^[A-Za-z0-9À-ÖØ-öø-ÿ&',.() /-]+$`)
	skillNamePattern  = regexp.MustCompile(`^[A-Za-z0-9+#.& /-]+$`)
	linkedInPattern   = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?$`)
	urlPattern        = regexp.MustCompile(`^https?://[^\s]+\.[^\s]+$`)
	alphanumericOnly  = regexp.MustCompile(`[^a-z0-9]`)
	sentenceSplit     = regexp.MustCompile(`[.!?]+`)
	quantifierPattern = regexp.MustCompile(`[0-9%$€£¥]`)
)

// placeholderWords are filler strings rejected in identity-like fields to
// discourage low-effort submissions.
var placeholderWords = []string{"test", "example", "sample", "dummy", "fake", "null", "undefined"}

// addressPlaceholders are literal words that indicate an unfilled address field.
var addressPlaceholders = []string{"address", "street", "example"}

// disposableDomains are throwaway email providers rejected outright.
var disposableDomains = []string{
	"mailinator.com",
	"guerrillamail.com",
	"10minutemail.com",
	"tempmail.com",
	"throwaway.email",
	"yopmail.com",
	"trashmail.com",
}

// freeProviders draw a warning suggesting a professional address, not an error.
var freeProviders = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// suspiciousPhonePrefixes reject obviously fabricated numbers.
var suspiciousPhonePrefixes = []string{"123", "111", "000", "999"}

// actionVerbs is the fixed list of resume action verbs checked in experience
// descriptions (heuristic, lowercase match).
var actionVerbs = []string{
	"achieved", "analyzed", "built", "collaborated", "created", "delivered",
	"designed", "developed", "engineered", "implemented", "improved",
	"increased", "launched", "led", "managed", "optimized", "organized",
	"reduced", "resolved", "spearheaded",
}

// degreeKeywords are recognized degree names, matched against the
// lowercased alphanumeric-only form of the degree field.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma",
	"certificate", "bsc", "msc", "mba", "btech", "mtech", "ba", "bs", "ma", "ms",
}

// genericSkillTerms are placeholder skill names that carry no information.
var genericSkillTerms = []string{"skill", "skills", "test", "example", "stuff", "things", "abc", "xyz"}

// skillLevels are the only accepted proficiency levels.
var skillLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
}

package types

// FieldIssues maps a field key to the messages reported for that field.
// Keys are flat for personal-info fields ("fullName", "email", ...),
// synthesized as "<section>_<index>" for list sections ("experience_0",
// "education_1", "achievement_2"), plus the aggregate keys "skillValidation"
// and "duplicateSkills". Most keys carry a single message; the aggregate
// skillValidation key carries one message per problematic skill.
type FieldIssues map[string][]string

// Add appends a message under key.
func (f FieldIssues) Add(key, message string) {
	f[key] = append(f[key], message)
}

// Merge copies every entry of other into f, appending on key overlap.
func (f FieldIssues) Merge(other FieldIssues) {
	for key, messages := range other {
		f[key] = append(f[key], messages...)
	}
}

// ValidationResult is the outcome of validating a resume document or one of
// its sections. Errors block submission; warnings are strictly advisory.
type ValidationResult struct {
	Errors      FieldIssues `json:"errors"`
	Warnings    FieldIssues `json:"warnings"`
	IsValid     bool        `json:"isValid"`
	HasWarnings bool        `json:"hasWarnings"`
}

// Recommendation is a prioritized, human-readable suggestion derived from
// validation results and document content. It is not itself a validation error.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"` // "high", "medium", "low"
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// ValidationSummary extends ValidationResult with counts, a completion score
// and actionable recommendations.
type ValidationSummary struct {
	ValidationResult
	ErrorCount      int              `json:"errorCount"`
	WarningCount    int              `json:"warningCount"`
	CompletionScore int              `json:"completionScore"`
	Recommendations []Recommendation `json:"recommendations"`
}

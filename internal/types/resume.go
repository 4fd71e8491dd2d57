// Package types provides type definitions for structured data used throughout the career-portal system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the identity fields of a resume document.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedIn,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// WorkExperience represents a single employment entry.
type WorkExperience struct {
	Company      string `json:"company"`
	Position     string `json:"position"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsCurrentJob bool   `json:"isCurrentJob,omitempty"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Skill represents a single skill with its category and proficiency level.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // "technical", "soft", or free-form
	Level    string `json:"level,omitempty"`    // "beginner", "intermediate", "advanced", "expert"
}

// Achievement represents a single achievement entry. Older clients send the
// text under "description"; Description is kept as a read fallback.
type Achievement struct {
	Text        string `json:"text,omitempty"`
	Description string `json:"description,omitempty"`
}

// Body returns the achievement text, falling back to the legacy description field.
func (a Achievement) Body() string {
	if a.Text != "" {
		return a.Text
	}
	return a.Description
}

// ResumeDocument is the aggregate user-submitted resume data. Validation never
// mutates it; absent sections behave as empty collections.
type ResumeDocument struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	WorkExperience   []WorkExperience `json:"workExperience,omitempty"`
	Education        []Education      `json:"education,omitempty"`
	Skills           []Skill          `json:"skills,omitempty"`
	Achievements     []Achievement    `json:"achievements,omitempty"`
	SelectedTemplate string           `json:"selectedTemplate,omitempty"`
}

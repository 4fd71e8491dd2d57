package validation

import (
	"testing"

	"github.com/dchen/career-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

func validEducation() types.Education {
	return types.Education{
		Institution:    "University of Texas",
		Degree:         "Bachelor of Science",
		Field:          "Computer Science",
		GraduationDate: "2019-05",
		GPA:            "3.8",
	}
}

func TestValidateEducationEmpty(t *testing.T) {
	result := ValidateEducation(nil)

	assert.NotEmpty(t, result.Errors["education"])
}

func TestValidateEducationValidEntry(t *testing.T) {
	result := ValidateEducation([]types.Education{validEducation()})

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateEducationEntry(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*types.Education)
		wantError bool
		wantWarn  bool
	}{
		{"Missing institution", func(e *types.Education) { e.Institution = "" }, true, false},
		{"Placeholder institution", func(e *types.Education) { e.Institution = "Sample University" }, true, false},
		{"Missing degree", func(e *types.Education) { e.Degree = "" }, true, false},
		{"Unrecognized degree warns", func(e *types.Education) { e.Degree = "Wizardry" }, false, true},
		{"Abbreviated degree recognized", func(e *types.Education) { e.Degree = "B.Sc." }, false, false},
		{"Missing field", func(e *types.Education) { e.Field = "" }, true, false},
		{"Graduation year too early", func(e *types.Education) { e.GraduationDate = "1901" }, true, false},
		{"Graduation year too late", func(e *types.Education) { e.GraduationDate = "2099-05" }, true, false},
		{"Missing graduation date ok", func(e *types.Education) { e.GraduationDate = "" }, false, false},
		{"GPA not a number", func(e *types.Education) { e.GPA = "four" }, true, false},
		{"GPA above scale", func(e *types.Education) { e.GPA = "4.5" }, true, false},
		{"GPA negative", func(e *types.Education) { e.GPA = "-1" }, true, false},
		{"Low GPA warns", func(e *types.Education) { e.GPA = "2.4" }, false, true},
		{"Missing GPA ok", func(e *types.Education) { e.GPA = "" }, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEducation()
			tt.mutate(&entry)
			result := ValidateEducation([]types.Education{entry})

			if tt.wantError {
				assert.NotEmpty(t, result.Errors["education_0"], "expected education_0 error")
			} else {
				assert.Empty(t, result.Errors["education_0"], "unexpected education_0 error")
			}
			if tt.wantWarn {
				assert.NotEmpty(t, result.Warnings["education_0"], "expected education_0 warning")
			} else {
				assert.Empty(t, result.Warnings["education_0"], "unexpected education_0 warning")
			}
		})
	}
}

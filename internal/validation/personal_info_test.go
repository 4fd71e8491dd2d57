package validation

import (
	"testing"

	"github.com/dchen/career-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

// validPersonalInfo returns personal info that passes every field rule.
func validPersonalInfo() types.PersonalInfo {
	return types.PersonalInfo{
		FullName:  "Jane Doe",
		Email:     "jane.doe@acmecorp.com",
		Phone:     "+1 555 867 5309",
		Address:   "742 Evergreen Terrace, Springfield, IL 62704",
		LinkedIn:  "https://linkedin.com/in/janedoe",
		Portfolio: "https://janedoe.dev",
	}
}

func TestValidatePersonalInfoAllValid(t *testing.T) {
	result := ValidatePersonalInfo(validPersonalInfo())

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantError bool
		wantWarn  bool
	}{
		{"Valid name", "Jane Doe", false, false},
		{"Valid accented name", "José García", false, false},
		{"Valid hyphenated name", "Mary-Jane O'Brien", false, false},
		{"Empty", "", true, false},
		{"Too short", "J", true, false},
		{"Contains digit", "John3 Doe", true, false},
		{"Placeholder test", "Test User", true, false},
		{"Placeholder fake", "Fake Person", true, false},
		{"Repeated characters", "Jaaaane Doe", true, false},
		{"Initials only", "J D", true, false},
		{"Initials with periods", "J. D.", true, false},
		{"Short token", "J Doe", true, false},
		{"Single name warns", "Prince", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validPersonalInfo()
			info.FullName = tt.fullName
			result := ValidatePersonalInfo(info)

			if tt.wantError {
				assert.NotEmpty(t, result.Errors["fullName"], "expected fullName error for %q", tt.fullName)
			} else {
				assert.Empty(t, result.Errors["fullName"], "unexpected fullName error for %q", tt.fullName)
			}
			if tt.wantWarn {
				assert.NotEmpty(t, result.Warnings["fullName"], "expected fullName warning for %q", tt.fullName)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantError bool
		wantWarn  bool
	}{
		{"Valid professional address", "jane.doe@acmecorp.com", false, false},
		{"Empty", "", true, false},
		{"No at sign", "invalid-email", true, false},
		{"No TLD", "jane@acme", true, false},
		{"Disposable domain", "a@mailinator.com", true, false},
		{"Disposable domain guerrilla", "someone@guerrillamail.com", true, false},
		{"Free provider warns only", "a@gmail.com", false, true},
		{"Free provider yahoo", "jane@yahoo.com", false, true},
		{"Auto-generated local part", "user12345@acmecorp.com", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validPersonalInfo()
			info.Email = tt.email
			result := ValidatePersonalInfo(info)

			if tt.wantError {
				assert.NotEmpty(t, result.Errors["email"], "expected email error for %q", tt.email)
			} else {
				assert.Empty(t, result.Errors["email"], "unexpected email error for %q", tt.email)
			}
			if tt.wantWarn {
				assert.NotEmpty(t, result.Warnings["email"], "expected email warning for %q", tt.email)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		wantError bool
	}{
		{"Valid international", "+1 555 867 5309", false},
		{"Valid with parentheses", "(555) 867-5309", false},
		{"Empty", "", true},
		{"Letters", "call me", true},
		{"Too few digits", "123", true},
		{"Too many digits", "1234567890123456", true},
		{"All same digit", "7777777777", true},
		{"Suspicious prefix 123", "1234567890", true},
		{"Suspicious prefix 000", "0001234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validPersonalInfo()
			info.Phone = tt.phone
			result := ValidatePersonalInfo(info)

			if tt.wantError {
				assert.NotEmpty(t, result.Errors["phone"], "expected phone error for %q", tt.phone)
			} else {
				assert.Empty(t, result.Errors["phone"], "unexpected phone error for %q", tt.phone)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantError bool
	}{
		{"Valid", "742 Evergreen Terrace, Springfield, IL 62704", false},
		{"Empty", "", true},
		{"Too short", "12 Elm", true},
		{"Placeholder word", "enter your address here please", true},
		{"Placeholder example", "123 Example Road, Springfield", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validPersonalInfo()
			info.Address = tt.address
			result := ValidatePersonalInfo(info)

			if tt.wantError {
				assert.NotEmpty(t, result.Errors["address"], "expected address error for %q", tt.address)
			} else {
				assert.Empty(t, result.Errors["address"], "unexpected address error for %q", tt.address)
			}
		})
	}
}

func TestValidateOptionalLinks(t *testing.T) {
	t.Run("missing LinkedIn warns", func(t *testing.T) {
		info := validPersonalInfo()
		info.LinkedIn = ""
		result := ValidatePersonalInfo(info)

		assert.Empty(t, result.Errors["linkedIn"])
		assert.NotEmpty(t, result.Warnings["linkedIn"])
	})

	t.Run("malformed LinkedIn errors", func(t *testing.T) {
		info := validPersonalInfo()
		info.LinkedIn = "https://twitter.com/janedoe"
		result := ValidatePersonalInfo(info)

		assert.NotEmpty(t, result.Errors["linkedIn"])
	})

	t.Run("missing portfolio is fine", func(t *testing.T) {
		info := validPersonalInfo()
		info.Portfolio = ""
		result := ValidatePersonalInfo(info)

		assert.Empty(t, result.Errors["portfolio"])
		assert.Empty(t, result.Warnings["portfolio"])
	})

	t.Run("malformed portfolio errors", func(t *testing.T) {
		info := validPersonalInfo()
		info.Portfolio = "not-a-url"
		result := ValidatePersonalInfo(info)

		assert.NotEmpty(t, result.Errors["portfolio"])
	})
}

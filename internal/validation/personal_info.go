package validation

import (
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

// ValidatePersonalInfo evaluates the identity fields of a resume document.
// For each field the first failing error rule wins; warnings are only
// considered for fields that raised no error.
func ValidatePersonalInfo(info types.PersonalInfo) Result {
	result := newResult()

	validateFullName(&result, info.FullName)
	validateEmail(&result, info.Email)
	validatePhone(&result, info.Phone)
	validateAddress(&result, info.Address)
	validateLinkedIn(&result, info.LinkedIn)
	validatePortfolio(&result, info.Portfolio)

	return result
}

func validateFullName(result *Result, raw string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		result.addError("fullName", "Full name is required")
		return
	}
	if len(name) < fullNameMinLen || len(name) > fullNameMaxLen {
		result.addError("fullName", "Full name must be between 2 and 100 characters")
		return
	}
	if !namePattern.MatchString(name) {
		result.addError("fullName", "Full name contains invalid characters")
		return
	}
	if containsPlaceholder(name, placeholderWords) {
		result.addError("fullName", "Please enter your real name, not a placeholder")
		return
	}
	if digitPattern.MatchString(name) {
		result.addError("fullName", "Full name cannot contain numbers")
		return
	}
	if hasRepeatedRun(name, 4) {
		result.addError("fullName", "Full name contains too many repeated characters")
		return
	}
	tokens := strings.Fields(name)
	if isInitialsOnly(tokens) {
		result.addError("fullName", "Please enter your full name, not just initials")
		return
	}
	if len(tokens) >= 2 {
		for _, token := range tokens {
			if len(strings.TrimRight(token, ".")) < 2 {
				result.addError("fullName", "Each part of your name must be at least 2 characters")
				return
			}
		}
	}
	if len(tokens) < 2 {
		result.addWarning("fullName", "Consider including both first and last name")
	}
}

// isInitialsOnly reports whether tokens look like space-separated initials:
// two or more tokens, each 1-2 letters.
func isInitialsOnly(tokens []string) bool {
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if len(strings.TrimRight(token, ".")) > 2 {
			return false
		}
	}
	return true
}

func validateEmail(result *Result, raw string) {
	email := strings.TrimSpace(raw)
	if email == "" {
		result.addError("email", "Email address is required")
		return
	}
	if len(email) > emailMaxLen {
		result.addError("email", "Email address is too long")
		return
	}
	if !emailPattern.MatchString(email) {
		result.addError("email", "Please enter a valid email address")
		return
	}

	lower := strings.ToLower(email)
	at := strings.LastIndex(lower, "@")
	localPart, domain := lower[:at], lower[at+1:]

	for _, disposable := range disposableDomains {
		if strings.Contains(domain, disposable) {
			result.addError("email", "Disposable email addresses are not accepted")
			return
		}
	}
	for _, provider := range freeProviders {
		if domain == provider {
			result.addWarning("email", "Consider using a professional email address")
			break
		}
	}
	if autoLocalPattern.MatchString(localPart) {
		result.addWarning("email", "This email address looks auto-generated")
	}
}

func validatePhone(result *Result, raw string) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		result.addError("phone", "Phone number is required")
		return
	}
	if !phonePattern.MatchString(phone) {
		result.addError("phone", "Please enter a valid phone number")
		return
	}
	digits := digitsOf(phone)
	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		result.addError("phone", "Phone number must contain between 7 and 15 digits")
		return
	}
	if allSameDigit(digits) {
		result.addError("phone", "Phone number cannot be a single repeated digit")
		return
	}
	for _, prefix := range suspiciousPhonePrefixes {
		if strings.HasPrefix(digits, prefix) {
			result.addError("phone", "Please enter a real phone number")
			return
		}
	}
}

func validateAddress(result *Result, raw string) {
	address := strings.TrimSpace(raw)
	if address == "" {
		result.addError("address", "Address is required")
		return
	}
	if len(address) < addressMinLen || len(address) > addressMaxLen {
		result.addError("address", "Address must be between 10 and 200 characters")
		return
	}
	if !addressPattern.MatchString(address) {
		result.addError("address", "Address contains invalid characters")
		return
	}
	if containsPlaceholder(address, addressPlaceholders) {
		result.addError("address", "Please enter your actual address")
		return
	}
}

func validateLinkedIn(result *Result, raw string) {
	linkedIn := strings.TrimSpace(raw)
	if linkedIn == "" {
		result.addWarning("linkedIn", "Adding a LinkedIn profile is recommended")
		return
	}
	if !linkedInPattern.MatchString(linkedIn) {
		result.addError("linkedIn", "Please enter a valid LinkedIn profile URL")
	}
}

func validatePortfolio(result *Result, raw string) {
	portfolio := strings.TrimSpace(raw)
	if portfolio == "" {
		return
	}
	if !urlPattern.MatchString(portfolio) {
		result.addError("portfolio", "Please enter a valid URL starting with http:// or https://")
	}
}

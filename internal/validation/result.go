package validation

import (
	"strings"
	"unicode"

	"github.com/dchen/career-portal/internal/types"
)

// Result pairs the error and warning maps produced by a section validator.
type Result struct {
	Errors   types.FieldIssues
	Warnings types.FieldIssues
}

func newResult() Result {
	return Result{
		Errors:   types.FieldIssues{},
		Warnings: types.FieldIssues{},
	}
}

func (r *Result) addError(key, message string) {
	r.Errors.Add(key, message)
}

func (r *Result) addWarning(key, message string) {
	r.Warnings.Add(key, message)
}

func (r *Result) merge(other Result) {
	r.Errors.Merge(other.Errors)
	r.Warnings.Merge(other.Warnings)
}

// containsPlaceholder reports whether value contains any of the given filler
// words, case-insensitively.
func containsPlaceholder(value string, words []string) bool {
	lower := strings.ToLower(value)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether value contains minRun or more consecutive
// identical characters.
func hasRepeatedRun(value string, minRun int) bool {
	var prev rune
	run := 0
	for _, r := range value {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= minRun {
			return true
		}
	}
	return false
}

// digitsOf returns only the decimal digit characters of value.
func digitsOf(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit reports whether digits is non-empty and made of one repeated digit.
func allSameDigit(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// First returns the message of the first error, used as the headline of an
// error response.
func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var pinRegex = regexp.MustCompile(`^\d{4}$`)

// IsValidPIN reports whether pin is exactly four digits.
func IsValidPIN(pin string) bool {
	return pinRegex.MatchString(pin)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth validates a "YYYY-MM" month string.
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

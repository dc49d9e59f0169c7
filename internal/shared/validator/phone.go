package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches hyphenated phone numbers
	// Format: 010-1234-5678
	phoneRegex = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)

	// birthdayRegex matches the first 7 characters of a resident registration number
	// Format: YYMMDD-X (990101-1)
	birthdayRegex = regexp.MustCompile(`^\d{6}-\d{1}$`)
)

// ValidatePhone validates a hyphenated phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// ValidateBirthday validates a YYMMDD-X birthday
func ValidateBirthday(fl validator.FieldLevel) bool {
	return birthdayRegex.MatchString(fl.Field().String())
}

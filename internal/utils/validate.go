package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateEmail reports whether the address has a plausible mailbox shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone strips everything but digits and accepts 10 to 15 of them.
func ValidatePhone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// PhoneValidator adapts ValidatePhone for use as a gin binding rule,
// registered under the "phone" tag at server start.
func PhoneValidator(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

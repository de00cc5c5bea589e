package dtos

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Egyptian mobile numbers: 11 digits starting 010/011/012/015.
var mobilePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)

// RegisterValidators installs the custom binding rules on gin's
// validator engine. Call once before the router handles traffic.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("mobile", validMobile); err != nil {
		return err
	}
	return v.RegisterValidation("password", strongPassword)
}

func validMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

// strongPassword requires at least 8 characters with a lowercase
// letter, an uppercase letter, a digit, and a punctuation mark.
func strongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

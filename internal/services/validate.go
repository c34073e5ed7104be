package services

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// emailPattern is local@domain.tld: one @, no whitespace, a dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("emailpattern", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// normalizeEmail returns the form emails are stored and looked up in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration checks the rules in order; the first failing rule wins.
// name and email must already be trimmed.
func validateRegistration(name, email, password string) error {
	for _, field := range []string{name, email, password} {
		if validate.Var(field, "required") != nil {
			return ErrFieldsRequired
		}
	}
	if validate.Var(password, "min=6") != nil {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if validate.Var(email, "emailpattern") != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validateLogin(email, password string) error {
	if validate.Var(email, "required") != nil || validate.Var(password, "required") != nil {
		return ErrLoginFieldsRequired
	}
	return nil
}

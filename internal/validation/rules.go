// Package validation provides custom validation rules for the application, plus the
// email and password checks they are built on.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/brdocs/internal/document/service"
	apperrors "github.com/allisson/brdocs/internal/errors"
)

var cnpjIdentifier = service.NewCNPJ()

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format and part lengths
var Email = validation.NewStringRuleWithError(
	ValidateEmail,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// CNPJ validates that a string is a CNPJ with correct check digits, masked or not
var CNPJ = validation.NewStringRuleWithError(
	cnpjIdentifier.Validate,
	validation.NewError("validation_cnpj", "must be a valid CNPJ"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

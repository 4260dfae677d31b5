// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
	customValidation "github.com/allisson/brdocs/internal/validation"
)

const (
	maxEmailLength    = 320
	maxPasswordLength = 1024
	maxCNPJLength     = 64
)

// RegistrationRequest contains the data submitted for a registration.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	CNPJ     string `json:"cnpj"`
}

// Validate checks that every field is present. Content checks are reported by the
// check endpoint instead of failing the request.
func (r *RegistrationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, validation.Length(1, maxEmailLength)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, maxPasswordLength)),
		validation.Field(&r.CNPJ, validation.Required, validation.Length(1, maxCNPJLength)),
	)
}

// ValidateStrict checks every field against its content rules, as required for processing.
func (r *RegistrationRequest) ValidateStrict() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.DefaultPasswordStrength,
		),
		validation.Field(&r.CNPJ,
			validation.Required,
			customValidation.NotBlank,
			customValidation.CNPJ,
		),
	)
}

// ToInput converts the request into a domain input.
func (r *RegistrationRequest) ToInput() *registrationDomain.Input {
	return &registrationDomain.Input{
		Email:    r.Email,
		Password: r.Password,
		CNPJ:     r.CNPJ,
	}
}

// EmailRequest carries an email address to inspect.
type EmailRequest struct {
	Email string `json:"email"`
}

// Validate checks if the email request is valid.
func (r *EmailRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxEmailLength),
		),
	)
}

// PasswordRequest carries a password to check.
type PasswordRequest struct {
	Password string `json:"password"`
}

// Validate checks if the password request is valid.
func (r *PasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, maxPasswordLength),
		),
	)
}

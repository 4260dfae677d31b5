// Package domain defines the registration entities: the submitted data, the per-field
// checks and the report produced when a registration is processed.
package domain

// Input is the data submitted for a company account registration.
type Input struct {
	Email    string
	Password string
	CNPJ     string
}

// Checks holds the outcome of each field check for an Input.
type Checks struct {
	EmailValid    bool
	PasswordValid bool
	CNPJValid     bool
	// PasswordViolations lists every password rule that was broken.
	PasswordViolations []string
}

// Valid reports whether every field passed its check.
func (c *Checks) Valid() bool {
	return c.EmailValid && c.PasswordValid && c.CNPJValid
}

// InvalidFields returns the names of the fields that failed, in input order.
func (c *Checks) InvalidFields() []string {
	var fields []string
	if !c.EmailValid {
		fields = append(fields, "email")
	}
	if !c.PasswordValid {
		fields = append(fields, "password")
	}
	if !c.CNPJValid {
		fields = append(fields, "cnpj")
	}
	return fields
}

// EmailInspection describes an email address and how it relates to the registration domain.
type EmailInspection struct {
	Email      string
	Normalized string
	Valid      bool
	// Domain and LocalPart are empty when the address is invalid.
	Domain                 string
	LocalPart              string
	FromRegistrationDomain bool
}

// PasswordCheck is the strength verdict for a password.
type PasswordCheck struct {
	Valid      bool
	Violations []string
}

package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace or extra @ in any part. Unicode
	// separators and the BOM count as whitespace, as browsers treat them.
	looseEmailRegex = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
)

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("loose_email", LooseEmail)
}

// LooseEmail accepts anything shaped like local@domain.tld. It is
// deliberately weaker than the built-in "email" tag, which rejects
// addresses that mail servers accept in practice.
func LooseEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsLooseEmail(val)
}

func IsLooseEmail(s string) bool {
	return looseEmailRegex.MatchString(s)
}

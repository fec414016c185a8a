package validation

import (
	"github.com/go-playground/validator/v10"
)

// New returns the validator shared by the use cases. Presence checks use the
// built-in required rule, so whitespace counts as a value.
func New() *validator.Validate {
	return validator.New()
}

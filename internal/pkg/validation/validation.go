// Package validation registers portal-specific rules on gin's binding
// validator.
package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// RegisterCustomValidators attaches the custom binding rules. Safe to call
// more than once; later registrations replace earlier ones.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// username: letters, digits and a small set of separators
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
}

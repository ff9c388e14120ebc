package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// customValidations are the tags registered on top of the built-in ones.
// "notblank" rejects strings that are empty after trimming whitespace.
var customValidations = map[string]validator.Func{
	"notblank": validators.NotBlank,
}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the project's extra tags registered.
// It panics if a tag cannot be registered.
func New() *CustomValidator {
	v, err := newValidate(customValidations)
	if err != nil {
		panic(err)
	}
	return &CustomValidator{v: v}
}

func newValidate(rules map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New()
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return v, nil
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	domainerrors "taskboard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates a request validator backed by struct tags.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Tag violations surface as a
// validation error carrying the offending fields.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

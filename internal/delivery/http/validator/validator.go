// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "cinelog/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server. Request structs carry
// `validate:"required"` tags only: validation is presence checking, not
// content checking.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct validation and maps failures onto the domain taxonomy.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

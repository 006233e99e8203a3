package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/speechmetrics/commscore/internal/apperr"
)

// RequestValidator plugs go-playground struct validation into echo, so
// handlers can rely on c.Validate for tagged request DTOs. Violations
// surface as validation errors the global handler turns into a 400.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return apperr.NewValidationWrap("invalid request payload", err)
	}

	return nil
}

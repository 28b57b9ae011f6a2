package api

import (
	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgstructure/internal/validation"
)

// requestValidator adapts validation.Validator to echo.Validator.
type requestValidator struct {
	v *validation.Validator
}

func NewValidator(v *validation.Validator) echo.Validator {
	return &requestValidator{v: v}
}

func (r *requestValidator) Validate(i any) error {
	return r.v.Struct(i)
}

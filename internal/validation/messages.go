package validation

import (
	"fmt"
	"github.com/go-playground/validator/v10"
)

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "omitnil":
		return fmt.Sprintf("%s must not be empty", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s must contain only letters and digits", field)
	case "alnumspace":
		return fmt.Sprintf("%s must contain only letters, digits and spaces", field)
	case "alphaspace":
		return fmt.Sprintf("%s must contain only letters and spaces", field)
	case "number":
		return fmt.Sprintf("%s must contain only digits", field)
	case "resource":
		return fmt.Sprintf("%s must be a lowercase resource name", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

package service

import (
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/internal/validation"
)

type ErrorCode string

const (
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	ErrorCodeUnspecified      ErrorCode = "UNSPECIFIED"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Validator checks a value against its validate tags.
type Validator interface {
	Struct(s any) error
}

func validate(v Validator, s any) *Error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verr *validation.Errors
	if errors.As(err, &verr) {
		return NewError(ErrorCodeValidationFailed, verr.Error())
	}
	return NewError(ErrorCodeValidationFailed, err.Error())
}

// asError unwraps a service error returned through a transaction callback.
func asError(err error, fallback string) *Error {
	if err == nil {
		return nil
	}

	var res *Error
	if errors.As(err, &res) {
		return res
	}
	return NewError(ErrorCodeUnspecified, fallback)
}

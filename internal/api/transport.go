package api

import (
	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgstructure/internal/service"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProcessRequest runs steps over req in order and stops at the first error.
func ProcessRequest[T any](e echo.Context, req *T, steps ...func(echo.Context, *T) error) error {
	for _, step := range steps {
		if err := step(e, req); err != nil {
			return err
		}
	}
	return nil
}

func bindBody[T any](e echo.Context, req *T) error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeValidationFailed, "invalid request body")
	}
	return nil
}

func validateBody[T any](e echo.Context, req *T) error {
	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeValidationFailed, err.Error())
	}
	return nil
}

func statusOf(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidationFailed, service.ErrorCodeAlreadyExists:
		return http.StatusBadRequest
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func transportError(e echo.Context, err *service.Error) error {
	return e.JSON(statusOf(err.Code), errorResponse{
		Error: err.Message,
		Code:  string(err.Code),
	})
}

// requestError renders an error returned by a request processing step.
func requestError(e echo.Context, err error) error {
	if serr, ok := err.(*service.Error); ok {
		return transportError(e, serr)
	}
	return transportError(e, service.NewError(service.ErrorCodeValidationFailed, err.Error()))
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps domain error classes to HTTP status codes.
// Unknown errors are treated as internal so a new error class can never
// leak as a misleading client fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// domainError writes the mapped status and message for a use case failure.
func domainError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// badRequest writes a 400 for malformed input caught before any use case
// ran.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"
)

// Error codes shared with API clients.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stacktrace returns the stack captured for the wrapped cause, if any.
func (e *DomainError) Stacktrace() string {
	if e.Err == nil {
		return ""
	}
	if oopsErr, ok := oops.AsOops(e.Err); ok {
		return oopsErr.Stacktrace()
	}
	return ""
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewNotFound(message string) error {
	return NewDomainError(CodeNotFound, message, http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

// NewInternalError hides the cause from callers and records a stack for the logs.
func NewInternalError(err error) error {
	if err != nil {
		err = oops.Code(CodeInternal).Wrap(err)
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Unexpected error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Is reports whether err carries the given taxonomy code.
func Is(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fromFiberError(fiberErr)
	}
	internal, _ := NewInternalError(err).(*DomainError)
	return internal
}

func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}

func fromFiberError(err *fiber.Error) *DomainError {
	switch err.Code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return NewDomainError(CodeValidationFailed, err.Message, http.StatusBadRequest, nil)
	case http.StatusUnauthorized:
		return NewDomainError(CodeUnauthorized, err.Message, err.Code, nil)
	case http.StatusForbidden:
		return NewDomainError(CodeForbidden, err.Message, err.Code, nil)
	case http.StatusNotFound:
		return NewDomainError(CodeNotFound, err.Message, err.Code, nil)
	case http.StatusConflict:
		return NewDomainError(CodeConflict, err.Message, err.Code, nil)
	}
	if err.Code < http.StatusInternalServerError {
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(err.Code), " ", "_"))
		return NewDomainError(code, err.Message, err.Code, nil)
	}
	internal, _ := NewInternalError(err).(*DomainError)
	return internal
}

package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-canvas/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest             ErrorCode = "bad_request"
	ErrCodeNotFound               ErrorCode = "not_found"
	ErrCodeValidationFailed       ErrorCode = "validation_failed"
	ErrCodeUnauthorized           ErrorCode = "unauthorized"
	ErrCodeForbidden              ErrorCode = "forbidden"
	ErrCodeAlreadyExists          ErrorCode = "already_exists"
	ErrCodeInsufficientPayment    ErrorCode = "insufficient_payment"
	ErrCodeInvalidTrait           ErrorCode = "invalid_trait"
	ErrCodeCustomizationLocked    ErrorCode = "customization_locked"
	ErrCodeMaxTraitsExceeded      ErrorCode = "max_traits_exceeded"
	ErrCodeCapacityExceeded       ErrorCode = "capacity_exceeded"
	ErrCodeConcurrentModification ErrorCode = "concurrent_modification"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// domainErrors maps every operation error kind to its status and code, first match wins
var domainErrors = []struct {
	err     error
	status  int
	code    ErrorCode
	message string
}{
	{domain.ErrUnauthorized, http.StatusForbidden, ErrCodeForbidden, "Caller is not allowed to perform this operation"},
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
	{domain.ErrAlreadyExists, http.StatusConflict, ErrCodeAlreadyExists, "Resource already exists"},
	{domain.ErrInsufficientPayment, http.StatusPaymentRequired, ErrCodeInsufficientPayment, "Insufficient payment"},
	{domain.ErrInvalidTrait, http.StatusUnprocessableEntity, ErrCodeInvalidTrait, "Invalid trait"},
	{domain.ErrCustomizationLocked, http.StatusLocked, ErrCodeCustomizationLocked, "Customization is locked"},
	{domain.ErrMaxTraitsExceeded, http.StatusConflict, ErrCodeMaxTraitsExceeded, "Maximum traits exceeded"},
	{domain.ErrCapacityExceeded, http.StatusConflict, ErrCodeCapacityExceeded, "Trait capacity exceeded"},
	{domain.ErrConcurrentModification, http.StatusConflict, ErrCodeConcurrentModification, "Concurrent modification, retry the request"},
}

// FromDomainError translates an operation error into an HTTP status and API error.
// Unknown errors become a 500 without leaking their text.
func FromDomainError(err error) (int, *APIError) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			return m.status, &APIError{
				Code:    m.code,
				Message: m.message,
				Details: err.Error(),
			}
		}
	}
	return http.StatusInternalServerError, NewInternalError("Internal server error")
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

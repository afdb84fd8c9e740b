package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-canvas/internal/domain"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   ErrorCode
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, ErrCodeForbidden},
		{"not found", fmt.Errorf("asset 9: %w", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict, ErrCodeAlreadyExists},
		{"insufficient payment", domain.ErrInsufficientPayment, http.StatusPaymentRequired, ErrCodeInsufficientPayment},
		{"invalid trait", domain.ErrInvalidTrait, http.StatusUnprocessableEntity, ErrCodeInvalidTrait},
		{"locked", domain.ErrCustomizationLocked, http.StatusLocked, ErrCodeCustomizationLocked},
		{"max traits", domain.ErrMaxTraitsExceeded, http.StatusConflict, ErrCodeMaxTraitsExceeded},
		{"capacity", domain.ErrCapacityExceeded, http.StatusConflict, ErrCodeCapacityExceeded},
		{"concurrent", domain.ErrConcurrentModification, http.StatusConflict, ErrCodeConcurrentModification},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := FromDomainError(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}

func TestFromDomainError_HidesInternalDetails(t *testing.T) {
	_, apiErr := FromDomainError(errors.New("pq: password authentication failed"))
	assert.Empty(t, apiErr.Details)
}

func TestAPIError_Error(t *testing.T) {
	err := NewValidationError("limit must be positive")
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"limit must be positive"}`, err.Error())
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-canvas/internal/api/shared/errors"
	"github.com/feral-file/ff-canvas/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message))
}

// respondUnauthorized responds when the request carries no caller identity
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errors.NewUnauthorizedError(message))
}

// respondOperationError responds with the status matching the operation error kind.
// Errors without a kind are logged as they end up as a 500.
func respondOperationError(c *gin.Context, err error, fields ...zap.Field) {
	status, apiErr := errors.FromDomainError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	}
	c.JSON(status, apiErr)
}

package handlers

import (
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success response body
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope is the uniform error response body
type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorEnvelope{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	})
}

// respondAppError maps the error taxonomy to HTTP statuses. Unclassified
// errors are logged and surfaced as a generic 500 so internals never leak.
func respondAppError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondError(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	default:
		logger.WithContext(c).WithError(err).Error("unhandled error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

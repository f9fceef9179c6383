package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	apperrors "celerey/internal/errors"
	"celerey/internal/logger"
	"celerey/internal/middleware"
	"celerey/internal/validator"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getSessionID extracts the onboarding session ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getSessionID(c *gin.Context) (string, error) {
	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return sessionID, nil
}

// bindJSON decodes the request body into req. Validation failures become a
// 422 with per-field messages; malformed bodies become ErrInvalidInput. An
// empty body is accepted when allowEmpty is set.
func bindJSON(c *gin.Context, req interface{}, allowEmpty bool) error {
	err := c.ShouldBindJSON(req)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return nil
	}
	if fields := validator.FieldErrors(err); fields != nil {
		return apperrors.WithFields(apperrors.ErrValidation, fields)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and field messages.
// Otherwise it logs the unexpected error and returns a generic internal server
// error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

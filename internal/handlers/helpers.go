package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "condogest/internal/errors"
	"condogest/internal/logger"
	"condogest/internal/middleware"
	"condogest/internal/report"
)

// ErrorResponse represents the JSON error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// operatorRequest assembles a report.Request from the authenticated
// request context. The period is filled in by the caller; everything
// here is frozen at request time so late results keep their own labels.
func operatorRequest(c *gin.Context, period report.Period) report.Request {
	return report.Request{
		Period:           period,
		Bearer:           c.GetString(middleware.ContextBearerToken),
		RequestedBy:      c.GetString(middleware.ContextOperatorName),
		OrganizationName: c.GetString(middleware.ContextOrganization),
		Address:          c.GetString(middleware.ContextAddress),
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
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
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

package appErrors

import (
	"net/http"

	"freelancehub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every error the API returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError translates any error into an ErrorResponse. Non-AppError
// values are treated as internal failures and logged with their cause.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError converts binding/validation failures into the
// standard envelope with field details preserved.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}

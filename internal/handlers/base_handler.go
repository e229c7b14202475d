package handlers

import (
	"errors"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs. Embed it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateQuery does the same for query parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
	} else {
		appErrors.HandleValidationError(c, err)
	}
	return false
}

// CallerEmail pulls the verified email off the context; an empty value
// means the auth middleware did not run, which is a routing bug.
func (h *BaseHandler) CallerEmail(c *gin.Context) (string, bool) {
	email := middleware.GetCallerEmail(c)
	if email == "" {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return "", false
	}
	return email, true
}

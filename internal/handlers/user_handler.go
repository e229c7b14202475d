package handlers

import (
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(base BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

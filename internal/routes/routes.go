package routes

import (
	"net/http"

	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1. The webhook endpoint is
// the only unauthenticated write path; its own signature check is the
// auth there.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.POST("/webhooks/clerk", h.Webhook.HandleClerk)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	authed.GET("/users/me", h.User.Me)

	authed.GET("/projects", h.Project.List)
	authed.GET("/projects/:id", h.Project.Get)

	manage := authed.Group("")
	manage.Use(middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin))
	manage.POST("/projects", h.Project.Create)
	manage.PUT("/projects/:id", h.Project.Update)
	manage.DELETE("/projects/:id", h.Project.Delete)
	manage.GET("/projects/:id/applications", h.Application.ListForProject)
	manage.PUT("/applications/:id", h.Application.Decide)
	manage.GET("/client/approvals", h.Application.ListApprovals)

	authed.POST("/applications",
		middleware.RequireRoles(models.UserRoleEmployee), h.Application.Create)
	authed.GET("/applications", h.Application.ListMine)

	authed.POST("/notifications/approval", h.Notification.SendApproval)

	authed.POST("/payments/create-order", h.Payment.CreateOrder)
	authed.POST("/payments/verify-order", h.Payment.VerifyOrder)
}

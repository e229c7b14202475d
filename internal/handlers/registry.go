package handlers

import (
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"
	"freelancehub_backend/internal/webhook"
)

// AppHandlers groups every HTTP handler behind one constructor.
type AppHandlers struct {
	User         *UserHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	Payment      *PaymentHandler
	Webhook      *WebhookHandler
}

func NewAppHandlers(sc *services.ServiceContainer, verifier webhook.Verifier) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		User:         NewUserHandler(base, sc.UserService),
		Project:      NewProjectHandler(base, sc.ProjectService),
		Application:  NewApplicationHandler(base, sc.ApplicationService),
		Notification: NewNotificationHandler(base, sc.NotificationService),
		Payment:      NewPaymentHandler(base, sc.PaymentService),
		Webhook:      NewWebhookHandler(base, verifier, sc.UserService),
	}
}

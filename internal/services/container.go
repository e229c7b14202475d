package services

import (
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/email"
	"freelancehub_backend/internal/payment"
	"freelancehub_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories into services once at startup.
type ServiceContainer struct {
	UserService         *UserService
	ProjectService      *ProjectService
	ApplicationService  *ApplicationService
	NotificationService *NotificationService
	PaymentService      *PaymentService
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config) (*ServiceContainer, error) {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)

	provider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		return nil, err
	}
	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, err
	}
	notifications := NewNotificationService(provider, templates, cfg.App.PublicURL)

	gateway := payment.NewGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	return &ServiceContainer{
		UserService:         NewUserService(userRepo),
		ProjectService:      NewProjectService(projectRepo, userRepo),
		ApplicationService:  NewApplicationService(appRepo, projectRepo, userRepo, assignmentRepo, notifications),
		NotificationService: notifications,
		PaymentService:      NewPaymentService(gateway),
	}, nil
}

package services

import (
	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/email"
	"freelancehub_backend/internal/services/dto"
)

// NotificationService renders decision emails and hands them to the
// mail provider. Delivery failures never fail the approval workflow;
// callers on that path fire this from a goroutine and just log.
type NotificationService struct {
	provider  email.Provider
	templates *email.TemplateManager
	publicURL string
}

func NewNotificationService(provider email.Provider, templates *email.TemplateManager, publicURL string) *NotificationService {
	return &NotificationService{
		provider:  provider,
		templates: templates,
		publicURL: publicURL,
	}
}

func (s *NotificationService) SendDecision(req *dto.ApprovalEmailRequest) error {
	templateName := email.TemplateRejection
	subject := "Update on your application for " + req.ProjectTitle
	if req.Action == "approve" {
		templateName = email.TemplateApproval
		subject = "Your application for " + req.ProjectTitle + " was approved"
	}

	body, err := s.templates.Render(templateName, email.TemplateData{
		EmployeeName: req.EmployeeName,
		ProjectTitle: req.ProjectTitle,
		ClientName:   req.ClientName,
		DashboardURL: s.publicURL,
	})
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.provider.Send(req.EmployeeEmail, subject, body); err != nil {
		return appErrors.ExternalServiceError(err)
	}
	return nil
}

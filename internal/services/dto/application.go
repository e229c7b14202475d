package dto

import (
	"time"

	"freelancehub_backend/internal/models"
)

type CreateApplicationRequest struct {
	ProjectID      string  `json:"projectId" binding:"required" validate:"required"`
	CoverLetter    string  `json:"coverLetter" binding:"required" validate:"required"`
	ExpectedSalary float64 `json:"expectedSalary" validate:"omitempty,gte=0"`
	PortfolioLink  string  `json:"portfolioLink" validate:"omitempty,url"`
}

type DecideApplicationRequest struct {
	Action          string `json:"action" binding:"required" validate:"required,is-application-action"`
	RejectionReason string `json:"rejectionReason"`
}

// ApplicationProject and ApplicationEmployee are the read-time joins the
// dashboard needs alongside each application.
type ApplicationProject struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ClientID   string  `json:"clientId"`
	CoverImage string  `json:"coverImage,omitempty"`
	Cost       float64 `json:"cost,omitempty"`
	Duration   string  `json:"duration,omitempty"`
	Status     string  `json:"status,omitempty"`
}

type ApplicationResponse struct {
	ID              string                   `json:"id"`
	ProjectID       string                   `json:"projectId"`
	EmployeeID      string                   `json:"employeeId"`
	CoverLetter     string                   `json:"coverLetter"`
	ExpectedSalary  float64                  `json:"expectedSalary"`
	PortfolioLink   string                   `json:"portfolioLink,omitempty"`
	Status          models.ApplicationStatus `json:"status"`
	ReviewedAt      *time.Time               `json:"reviewedAt,omitempty"`
	RejectionReason string                   `json:"rejectionReason"`
	Project         *ApplicationProject      `json:"project,omitempty"`
	Employee        *UserSummary             `json:"employee,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:              a.ID,
		ProjectID:       a.ProjectID,
		EmployeeID:      a.EmployeeID,
		CoverLetter:     a.CoverLetter,
		ExpectedSalary:  a.ExpectedSalary,
		PortfolioLink:   a.PortfolioLink,
		Status:          a.Status,
		ReviewedAt:      a.ReviewedAt,
		RejectionReason: a.RejectionReason,
		Employee:        NewUserSummary(a.Employee),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if a.Project != nil {
		resp.Project = &ApplicationProject{
			ID:         a.Project.ID,
			Title:      a.Project.Title,
			ClientID:   a.Project.ClientID,
			CoverImage: a.Project.CoverImage,
			Cost:       a.Project.Cost,
			Duration:   a.Project.Duration,
			Status:     string(a.Project.Status),
		}
	}

	return resp
}

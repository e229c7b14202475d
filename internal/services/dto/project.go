package dto

import (
	"encoding/json"
	"time"

	"freelancehub_backend/internal/models"
)

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required" validate:"required"`
	Description  string   `json:"description" binding:"required" validate:"required"`
	CoverImage   string   `json:"coverImage" validate:"omitempty,url"`
	Cost         float64  `json:"cost" binding:"required" validate:"required,gt=0"`
	Duration     string   `json:"duration" binding:"required" validate:"required"`
	TotalSeats   int      `json:"totalSeats" binding:"required" validate:"required,min=1"`
	Tags         []string `json:"tags"`
	Requirements []string `json:"requirements"`
	Deliverables []string `json:"deliverables"`
}

// UpdateProjectRequest is a partial update; nil fields are left alone.
// SeatsAvailable, TotalSeats and Status are deliberate manual overrides.
type UpdateProjectRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	CoverImage     *string  `json:"coverImage,omitempty" validate:"omitempty,url"`
	Cost           *float64 `json:"cost,omitempty" validate:"omitempty,gt=0"`
	Duration       *string  `json:"duration,omitempty"`
	SeatsAvailable *int     `json:"seatsAvailable,omitempty"`
	TotalSeats     *int     `json:"totalSeats,omitempty" validate:"omitempty,min=1"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,is-project-status"`
	Tags           []string `json:"tags,omitempty"`
	Requirements   []string `json:"requirements,omitempty"`
	Deliverables   []string `json:"deliverables,omitempty"`
}

type ProjectFilterRequest struct {
	Status   string `form:"status" validate:"omitempty,is-project-status"`
	ClientID string `form:"clientId" validate:"omitempty,uuid"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ProjectResponse struct {
	ID             string               `json:"id"`
	ClientID       string               `json:"clientId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	CoverImage     string               `json:"coverImage"`
	Cost           float64              `json:"cost"`
	Duration       string               `json:"duration"`
	SeatsAvailable int                  `json:"seatsAvailable"`
	TotalSeats     int                  `json:"totalSeats"`
	Status         models.ProjectStatus `json:"status"`
	Tags           []string             `json:"tags"`
	Requirements   []string             `json:"requirements"`
	Deliverables   []string             `json:"deliverables"`
	Client         *UserSummary         `json:"client,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ProjectListResponse struct {
	Projects   []*ProjectResponse `json:"projects"`
	Pagination Pagination         `json:"pagination"`
}

func NewProjectResponse(p *models.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:             p.ID,
		ClientID:       p.ClientID,
		Title:          p.Title,
		Description:    p.Description,
		CoverImage:     p.CoverImage,
		Cost:           p.Cost,
		Duration:       p.Duration,
		SeatsAvailable: p.SeatsAvailable,
		TotalSeats:     p.TotalSeats,
		Status:         p.Status,
		Client:         NewUserSummary(p.Client),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if len(p.Tags) > 0 {
		json.Unmarshal(p.Tags, &resp.Tags)
	}
	if len(p.Requirements) > 0 {
		json.Unmarshal(p.Requirements, &resp.Requirements)
	}
	if len(p.Deliverables) > 0 {
		json.Unmarshal(p.Deliverables, &resp.Deliverables)
	}

	return resp
}

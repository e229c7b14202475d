package services

import (
	"encoding/json"
	"errors"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"

	"gorm.io/datatypes"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProjectService struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

func (s *ProjectService) Create(actorEmail string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}
	if !canReview(actor.Role) {
		return nil, appErrors.NewForbiddenError("Only clients can create projects")
	}

	project := &models.Project{
		ClientID:       actor.ID,
		Title:          req.Title,
		Description:    req.Description,
		CoverImage:     req.CoverImage,
		Cost:           req.Cost,
		Duration:       req.Duration,
		SeatsAvailable: req.TotalSeats,
		TotalSeats:     req.TotalSeats,
		Status:         models.ProjectStatusActive,
		Tags:           toJSON(req.Tags),
		Requirements:   toJSON(req.Requirements),
		Deliverables:   toJSON(req.Deliverables),
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, appErrors.InternalError(err)
	}

	project.Client = actor
	return dto.NewProjectResponse(project), nil
}

func (s *ProjectService) Get(id string) (*dto.ProjectResponse, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewProjectResponse(project), nil
}

func (s *ProjectService) List(req *dto.ProjectFilterRequest) (*dto.ProjectListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	projects, total, err := s.projectRepo.FindWithFilter(repositories.ProjectFilter{
		Status:   models.ProjectStatus(req.Status),
		ClientID: req.ClientID,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := &dto.ProjectListResponse{
		Projects: make([]*dto.ProjectResponse, 0, len(projects)),
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, dto.NewProjectResponse(&projects[i]))
	}
	return resp, nil
}

// Update applies a partial edit by the owner. Seat and status overrides
// are allowed but kept coherent: the seat count must stay within the
// project's capacity, and the active/full pair must agree with it.
func (s *ProjectService) Update(actorEmail, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.authorizeOwner(actorEmail, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Tags != nil {
		fields["tags"] = toJSON(req.Tags)
	}
	if req.Requirements != nil {
		fields["requirements"] = toJSON(req.Requirements)
	}
	if req.Deliverables != nil {
		fields["deliverables"] = toJSON(req.Deliverables)
	}

	seats := project.SeatsAvailable
	if req.SeatsAvailable != nil {
		seats = *req.SeatsAvailable
	}
	totalSeats := project.TotalSeats
	if req.TotalSeats != nil {
		totalSeats = *req.TotalSeats
	}
	if seats < 0 || seats > totalSeats {
		return nil, appErrors.ErrSeatCountOutOfRange
	}
	if req.SeatsAvailable != nil {
		fields["seats_available"] = seats
	}
	if req.TotalSeats != nil {
		fields["total_seats"] = totalSeats
	}

	status := project.Status
	if req.Status != nil {
		status = models.ProjectStatus(*req.Status)
	}
	switch {
	case seats == 0 && status == models.ProjectStatusActive:
		status = models.ProjectStatusFull
	case seats > 0 && status == models.ProjectStatusFull:
		status = models.ProjectStatusActive
	}
	if status != project.Status {
		fields["status"] = status
	}

	if len(fields) > 0 {
		if err := s.projectRepo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, repositories.ErrProjectNotFound) {
				return nil, appErrors.ErrProjectNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}

	updated, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.NewProjectResponse(updated), nil
}

func (s *ProjectService) Delete(actorEmail, id string) error {
	if _, err := s.authorizeOwner(actorEmail, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return appErrors.ErrProjectNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// authorizeOwner loads the project and checks the actor may manage it.
// Admins may manage any project; clients only their own.
func (s *ProjectService) authorizeOwner(actorEmail, id string) (*models.Project, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if actor.Role != models.UserRoleAdmin && project.ClientID != actor.ID {
		return nil, appErrors.NewForbiddenError("You do not own this project")
	}
	return project, nil
}

func toJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

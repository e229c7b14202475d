package services

import (
	"errors"
	"time"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
)

const defaultAssignmentWindow = 30 * 24 * time.Hour

// ApplicationService runs the seat-based approval workflow: employees
// apply for a seat, the project owner approves or rejects, and an
// approval consumes exactly one seat.
type ApplicationService struct {
	appRepo        repositories.ApplicationRepository
	projectRepo    repositories.ProjectRepository
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
	notifications  *NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
	notifications *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		appRepo:        appRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		notifications:  notifications,
	}
}

// Submit files a pending application. Preconditions are checked in a
// fixed order so a request failing several of them always gets the
// same error: unknown caller, bad id, missing project, project not
// accepting, no seats left, duplicate application.
func (s *ApplicationService) Submit(actorEmail string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}

	if err := validateUUID(req.ProjectID); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if project.Status != models.ProjectStatusActive {
		return nil, appErrors.ErrProjectNotAccepting
	}
	if project.SeatsAvailable <= 0 {
		return nil, appErrors.ErrNoSeatsAvailable
	}

	if _, err := s.appRepo.FindByProjectAndEmployee(project.ID, actor.ID); err == nil {
		return nil, appErrors.ErrDuplicateApplication
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, appErrors.InternalError(err)
	}

	app := &models.Application{
		ProjectID:      project.ID,
		EmployeeID:     actor.ID,
		CoverLetter:    req.CoverLetter,
		ExpectedSalary: req.ExpectedSalary,
		PortfolioLink:  req.PortfolioLink,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, appErrors.ErrDuplicateApplication
		}
		return nil, appErrors.InternalError(err)
	}

	app.Project = project
	app.Employee = actor
	return dto.NewApplicationResponse(app), nil
}

// ListMine returns the caller's own applications, newest first.
func (s *ApplicationService) ListMine(actorEmail string) ([]*dto.ApplicationResponse, error) {
	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.FindByEmployee(actor.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// ListForProject returns every application on one project, for its owner.
func (s *ApplicationService) ListForProject(actorEmail, projectID string) ([]*dto.ApplicationResponse, error) {
	if err := validateUUID(projectID); err != nil {
		return nil, err
	}

	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}
	if !canReview(actor.Role) {
		return nil, appErrors.NewForbiddenError("Only clients can view project applications")
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if actor.Role != models.UserRoleAdmin && project.ClientID != actor.ID {
		return nil, appErrors.NewForbiddenError("You do not own this project")
	}

	apps, err := s.appRepo.FindByProject(projectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// ListApprovals returns the review queue: every application across all
// of the caller's projects.
func (s *ApplicationService) ListApprovals(actorEmail string) ([]*dto.ApplicationResponse, error) {
	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}
	if !canReview(actor.Role) {
		return nil, appErrors.NewForbiddenError("Only clients can review applications")
	}

	projectIDs, err := s.projectRepo.FindIDsByClient(actor.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	apps, err := s.appRepo.FindByProjects(projectIDs)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// Decide approves or rejects a pending application. Approval consumes
// one seat atomically with the status flip; rejection never touches
// the project. Both outcomes are terminal.
func (s *ApplicationService) Decide(actorEmail, applicationID string, req *dto.DecideApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := validateUUID(applicationID); err != nil {
		return nil, err
	}

	actor, err := resolveUser(s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}
	if !canReview(actor.Role) {
		return nil, appErrors.NewForbiddenError("Only clients can review applications")
	}

	app, err := s.appRepo.FindByIDWithProject(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if app.Project == nil {
		return nil, appErrors.ErrProjectNotFound
	}
	if actor.Role != models.UserRoleAdmin && app.Project.ClientID != actor.ID {
		return nil, appErrors.NewForbiddenError("You do not own this project")
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, appErrors.ErrAlreadyProcessed
	}

	now := time.Now()
	var updated *models.Application

	switch req.Action {
	case "approve":
		updated, err = s.appRepo.Approve(app.ID, app.ProjectID, now)
	case "reject":
		updated, err = s.appRepo.Reject(app.ID, now, req.RejectionReason)
	default:
		return nil, appErrors.ErrInvalidAction
	}
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNoSeatsAvailable):
			return nil, appErrors.ErrNoSeatsAvailable
		case errors.Is(err, repositories.ErrApplicationProcessed):
			return nil, appErrors.ErrAlreadyProcessed
		default:
			return nil, appErrors.InternalError(err)
		}
	}

	updated.Project = app.Project
	updated.Employee = app.Employee

	if req.Action == "approve" {
		go s.createAssignment(updated)
	}
	go s.notifyDecision(updated, actor, req.Action)

	return dto.NewApplicationResponse(updated), nil
}

// createAssignment opens the engagement record for an approved
// application. Best effort; the approval already committed.
func (s *ApplicationService) createAssignment(app *models.Application) {
	start := time.Now()
	assignment := &models.ProjectAssignment{
		ProjectID:     app.ProjectID,
		EmployeeID:    app.EmployeeID,
		ApplicationID: app.ID,
		Status:        models.AssignmentStatusPending,
		Payment:       app.Project.Cost,
		StartDate:     start,
		Deadline:      start.Add(defaultAssignmentWindow),
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		logger.Error("failed to create assignment for approved application",
			"applicationId", app.ID, "error", err)
	}
}

func (s *ApplicationService) notifyDecision(app *models.Application, reviewer *models.User, action string) {
	if app.Employee == nil {
		logger.Warn("skipping decision email, employee not loaded", "applicationId", app.ID)
		return
	}

	err := s.notifications.SendDecision(&dto.ApprovalEmailRequest{
		EmployeeEmail: app.Employee.Email,
		EmployeeName:  app.Employee.Name,
		ProjectTitle:  app.Project.Title,
		ClientName:    reviewer.Name,
		Action:        action,
	})
	if err != nil {
		logger.Error("failed to send decision email",
			"applicationId", app.ID, "action", action, "error", err)
	}
}

func toApplicationResponses(apps []models.Application) []*dto.ApplicationResponse {
	out := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}
	return out
}

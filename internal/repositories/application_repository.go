package repositories

import (
	"errors"
	"time"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
	ErrApplicationProcessed     = errors.New("application already processed")
	ErrNoSeatsAvailable         = errors.New("no seats available")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByIDWithProject(id string) (*models.Application, error)
	FindByProjectAndEmployee(projectID, employeeID string) (*models.Application, error)
	FindByEmployee(employeeID string) ([]models.Application, error)
	FindByProject(projectID string) ([]models.Application, error)
	FindByProjects(projectIDs []string) ([]models.Application, error)

	// Approve flips the application out of pending and consumes one seat
	// on the project in a single transaction. The seat decrement is a
	// conditional update, so two approvals racing for the last seat
	// cannot both win; the loser gets ErrNoSeatsAvailable and nothing
	// is persisted.
	Approve(applicationID, projectID string, reviewedAt time.Time) (*models.Application, error)

	// Reject flips the application out of pending. The project row is
	// never touched on rejection.
	Reject(applicationID string, reviewedAt time.Time, reason string) (*models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	var existing models.Application
	err := r.db.Where("project_id = ? AND employee_id = ?", app.ProjectID, app.EmployeeID).
		First(&existing).Error
	if err == nil {
		return ErrApplicationAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByIDWithProject(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Project").Preload("Employee").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByProjectAndEmployee(projectID, employeeID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByEmployee(employeeID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Project").Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByProject(projectID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Employee").
		Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByProjects(projectIDs []string) ([]models.Application, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	var apps []models.Application
	err := r.db.Preload("Project").Preload("Employee").
		Where("project_id IN ?", projectIDs).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Approve(applicationID, projectID string, reviewedAt time.Time) (*models.Application, error) {
	var app models.Application

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Conditional check-and-decrement: a plain load-then-save here
		// would lose updates under concurrent approvals.
		result := tx.Model(&models.Project{}).
			Where("id = ? AND seats_available > 0", projectID).
			Updates(map[string]interface{}{
				"seats_available": gorm.Expr("seats_available - 1"),
				"status": gorm.Expr(
					"CASE WHEN seats_available - 1 = 0 THEN ? ELSE status END",
					models.ProjectStatusFull,
				),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoSeatsAvailable
		}

		result = tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", applicationID, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.ApplicationStatusApproved,
				"reviewed_at": reviewedAt,
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost a race with another reviewer; roll the seat back too.
			return ErrApplicationProcessed
		}

		return tx.First(&app, "id = ?", applicationID).Error
	})
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *ApplicationRepositoryImpl) Reject(applicationID string, reviewedAt time.Time, reason string) (*models.Application, error) {
	var app models.Application

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", applicationID, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":           models.ApplicationStatusRejected,
				"reviewed_at":      reviewedAt,
				"rejection_reason": reason,
				"updated_at":       time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationProcessed
		}

		return tx.First(&app, "id = ?", applicationID).Error
	})
	if err != nil {
		return nil, err
	}

	return &app, nil
}

package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type AssignmentRepository interface {
	Create(assignment *models.ProjectAssignment) error
	FindByApplication(applicationID string) (*models.ProjectAssignment, error)
	FindByEmployee(employeeID string) ([]models.ProjectAssignment, error)
	FindByProject(projectID string) ([]models.ProjectAssignment, error)
}

type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

func (r *AssignmentRepositoryImpl) Create(assignment *models.ProjectAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *AssignmentRepositoryImpl) FindByApplication(applicationID string) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	err := r.db.First(&assignment, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepositoryImpl) FindByEmployee(employeeID string) ([]models.ProjectAssignment, error) {
	var assignments []models.ProjectAssignment
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepositoryImpl) FindByProject(projectID string) ([]models.ProjectAssignment, error) {
	var assignments []models.ProjectAssignment
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

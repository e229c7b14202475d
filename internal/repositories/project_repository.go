package repositories

import (
	"errors"
	"time"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectFilter struct {
	Status   models.ProjectStatus
	ClientID string
	Page     int
	PageSize int
}

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	FindWithFilter(criteria ProjectFilter) ([]models.Project, int64, error)
	FindIDsByClient(clientID string) ([]string, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Client").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindWithFilter(criteria ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	query := r.db.Model(&models.Project{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.ClientID != "" {
		query = query.Where("client_id = ?", criteria.ClientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("Client").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error

	return projects, total, err
}

func (r *ProjectRepositoryImpl) FindIDsByClient(clientID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Project{}).
		Where("client_id = ?", clientID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ProjectRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

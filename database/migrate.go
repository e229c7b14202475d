package database

import (
	"fmt"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. uuid-ossp backs the uuid
// primary key defaults, so it must exist before the tables do.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Application{},
		&models.ProjectAssignment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

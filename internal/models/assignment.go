package models

import "time"

// ProjectAssignment tracks the engagement that starts when an application
// is approved. One assignment per approved application.
type ProjectAssignment struct {
	BaseModel
	ProjectID     string           `gorm:"type:uuid;not null;index:idx_assignments_project_employee" json:"projectId"`
	EmployeeID    string           `gorm:"type:uuid;not null;index:idx_assignments_project_employee" json:"employeeId"`
	ApplicationID string           `gorm:"type:uuid;not null" json:"applicationId"`
	Status        AssignmentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Progress      int              `gorm:"default:0" json:"progress"`
	Payment       float64          `gorm:"not null" json:"payment"`
	StartDate     time.Time        `gorm:"not null" json:"startDate"`
	Deadline      time.Time        `gorm:"not null" json:"deadline"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
}

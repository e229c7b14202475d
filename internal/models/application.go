package models

import "time"

// Application is an employee's request to fill one seat on a project.
// Status is terminal once it leaves pending; rows are never deleted.
type Application struct {
	BaseModel
	ProjectID       string            `gorm:"type:uuid;not null;index:idx_applications_project_employee" json:"projectId"`
	EmployeeID      string            `gorm:"type:uuid;not null;index:idx_applications_project_employee" json:"employeeId"`
	CoverLetter     string            `gorm:"not null" json:"coverLetter"`
	ExpectedSalary  float64           `json:"expectedSalary"`
	PortfolioLink   string            `json:"portfolioLink,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
	RejectionReason string            `json:"rejectionReason"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Employee *User    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

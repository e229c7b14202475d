package models

// User mirrors an identity record from the external identity provider.
// Records are created and updated through the webhook, never deleted here.
type User struct {
	BaseModel
	Name             string       `gorm:"not null" json:"name"`
	Email            string       `gorm:"uniqueIndex;not null" json:"email"`
	Username         string       `gorm:"uniqueIndex;not null" json:"username"`
	Role             UserRole     `gorm:"type:varchar(20)" json:"role"`
	EmployeeType     EmployeeType `gorm:"type:varchar(20)" json:"employeeType,omitempty"`
	EngineeringField string       `json:"engineeringField,omitempty"`
	ProfilePicture   string       `json:"profilePicture,omitempty"`
}

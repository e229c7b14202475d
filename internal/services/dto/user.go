package dto

import "freelancehub_backend/internal/models"

// UserSummary is the denormalized display shape joined into application
// and project responses at read time; nothing here is stored twice.
type UserSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ProfilePicture   string `json:"profilePicture,omitempty"`
	EngineeringField string `json:"engineeringField,omitempty"`
	EmployeeType     string `json:"employeeType,omitempty"`
}

func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		ProfilePicture:   u.ProfilePicture,
		EngineeringField: u.EngineeringField,
		EmployeeType:     string(u.EmployeeType),
	}
}

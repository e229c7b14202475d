package models

type UserRole string
type EmployeeType string
type ProjectStatus string
type ApplicationStatus string
type AssignmentStatus string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleClient   UserRole = "client"
	UserRoleEmployee UserRole = "employee"

	EmployeeTypeFreelancer   EmployeeType = "freelancer"
	EmployeeTypeProfessional EmployeeType = "professional"

	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusInactive  ProjectStatus = "inactive"
	ProjectStatusFull      ProjectStatus = "full"
	ProjectStatusCompleted ProjectStatus = "completed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
)

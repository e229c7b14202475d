package dto

type ApprovalEmailRequest struct {
	EmployeeEmail string `json:"employeeEmail" binding:"required" validate:"required,email"`
	EmployeeName  string `json:"employeeName" binding:"required" validate:"required"`
	ProjectTitle  string `json:"projectTitle" binding:"required" validate:"required"`
	ClientName    string `json:"clientName" binding:"required" validate:"required"`
	Action        string `json:"action" binding:"required" validate:"required,is-application-action"`
}

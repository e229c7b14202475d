package validator

import (
	"log"

	"freelancehub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enum rules into the validator
// instance. Registration failures are startup bugs, so they are fatal.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-employee-type", validateEmployeeType)
	mustRegister("is-project-status", validateProjectStatus)
	mustRegister("is-application-action", validateApplicationAction)
}

// Empty values pass; 'required' handles presence separately.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleClient, models.UserRoleEmployee:
		return true
	default:
		return false
	}
}

func validateEmployeeType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.EmployeeType(value) {
	case models.EmployeeTypeFreelancer, models.EmployeeTypeProfessional:
		return true
	default:
		return false
	}
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProjectStatus(value) {
	case models.ProjectStatusActive, models.ProjectStatusInactive,
		models.ProjectStatusFull, models.ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

func validateApplicationAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "approve", "reject":
		return true
	default:
		return false
	}
}

package services

import (
	"errors"
	"strings"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/webhook"
)

// UserService owns the local mirror of the identity provider's user
// directory. Records arrive through webhook events; there is no local
// signup path.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return resolveUser(s.userRepo, email)
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

// HandleIdentityEvent applies a verified webhook event to the local
// directory. Event types outside the user lifecycle are acknowledged
// and skipped so the provider does not retry them forever.
func (s *UserService) HandleIdentityEvent(event *webhook.Event) error {
	switch event.Type {
	case "user.created":
		return s.createFromIdentity(event.Data)
	case "user.updated":
		return s.updateFromIdentity(event.Data)
	default:
		logger.Debug("ignoring identity event", "type", event.Type)
		return nil
	}
}

func (s *UserService) createFromIdentity(data webhook.EventData) error {
	email := data.PrimaryEmail()
	if email == "" {
		return appErrors.NewBadRequestError("Identity event has no primary email address")
	}

	user := &models.User{
		Name:             identityName(data, email),
		Email:            email,
		Username:         identityUsername(data, email),
		Role:             models.UserRole(data.UnsafeMetadata.Role),
		EmployeeType:     models.EmployeeType(data.UnsafeMetadata.EmployeeType),
		EngineeringField: data.UnsafeMetadata.EngineeringField,
		ProfilePicture:   data.ImageURL,
	}

	err := s.userRepo.Create(user)
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		// Redelivered event; treat it as an update.
		return s.updateFromIdentity(data)
	}
	if err != nil {
		return appErrors.InternalError(err)
	}

	logger.Info("user created from identity event", "email", email, "role", user.Role)
	return nil
}

func (s *UserService) updateFromIdentity(data webhook.EventData) error {
	email := data.PrimaryEmail()
	if email == "" {
		return appErrors.NewBadRequestError("Identity event has no primary email address")
	}

	fields := map[string]interface{}{
		"name":            identityName(data, email),
		"profile_picture": data.ImageURL,
	}
	if data.Username != "" {
		fields["username"] = data.Username
	}
	if data.UnsafeMetadata.Role != "" {
		fields["role"] = data.UnsafeMetadata.Role
	}
	if data.UnsafeMetadata.EmployeeType != "" {
		fields["employee_type"] = data.UnsafeMetadata.EmployeeType
	}
	if data.UnsafeMetadata.EngineeringField != "" {
		fields["engineering_field"] = data.UnsafeMetadata.EngineeringField
	}

	err := s.userRepo.UpdateByEmail(email, fields)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return appErrors.ErrUserNotFound
	}
	if err != nil {
		return appErrors.InternalError(err)
	}

	logger.Info("user updated from identity event", "email", email)
	return nil
}

func identityName(data webhook.EventData, email string) string {
	name := strings.TrimSpace(data.FirstName + " " + data.LastName)
	if name != "" {
		return name
	}
	if data.Username != "" {
		return data.Username
	}
	return email
}

func identityUsername(data webhook.EventData, email string) string {
	if data.Username != "" {
		return data.Username
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

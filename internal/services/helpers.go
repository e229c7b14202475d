package services

import (
	"errors"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"

	"github.com/google/uuid"
)

// validateUUID rejects malformed identifiers before they reach the
// database, so a garbage path segment is a 400 and not an empty query.
func validateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.ErrInvalidID
	}
	return nil
}

// resolveUser turns a token email into the user record it belongs to.
// A token for an unknown email means identity sync has not happened yet.
func resolveUser(repo repositories.UserRepository, email string) (*models.User, error) {
	user, err := repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func canReview(role models.UserRole) bool {
	return role == models.UserRoleClient || role == models.UserRoleAdmin
}

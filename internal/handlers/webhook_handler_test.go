package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{ err error }

func (v *stubVerifier) Verify(payload []byte, headers http.Header) error { return v.err }

type memUserRepo struct{ users map[string]*models.User }

func (r *memUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = "generated-id"
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) UpdateByEmail(email string, fields map[string]interface{}) error {
	if _, ok := r.users[email]; !ok {
		return repositories.ErrUserNotFound
	}
	return nil
}

func (r *memUserRepo) FindByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	return nil, nil
}

func webhookRouter(verifier *stubVerifier, repo *memUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())
	h := NewWebhookHandler(base, verifier, services.NewUserService(repo))

	r := gin.New()
	r.POST("/api/v1/webhooks/clerk", h.HandleClerk)
	return r
}

const clerkUserCreated = `{
	"type": "user.created",
	"data": {
		"id": "user_2abc",
		"username": "jdoe",
		"first_name": "Jane",
		"last_name": "Doe",
		"primary_email_address_id": "em_1",
		"email_addresses": [{"id": "em_1", "email_address": "jane@example.com"}],
		"unsafe_metadata": {"role": "employee"}
	}
}`

func TestWebhookCreatesUser(t *testing.T) {
	repo := &memUserRepo{users: map[string]*models.User{}}
	router := webhookRouter(&stubVerifier{}, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/clerk", strings.NewReader(clerkUserCreated))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	user, ok := repo.users["jane@example.com"]
	require.True(t, ok, "user record must exist after the event")
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, models.UserRoleEmployee, user.Role)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	repo := &memUserRepo{users: map[string]*models.User{}}
	router := webhookRouter(&stubVerifier{err: errors.New("signature mismatch")}, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/clerk", strings.NewReader(clerkUserCreated))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.users, "unverified events must not touch the directory")
}

func TestWebhookRejectsMalformedPayload(t *testing.T) {
	repo := &memUserRepo{users: map[string]*models.User{}}
	router := webhookRouter(&stubVerifier{}, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/clerk", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

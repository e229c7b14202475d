package services

import (
	"testing"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectRequest() *dto.CreateProjectRequest {
	return &dto.CreateProjectRequest{
		Title:       "Billing rewrite",
		Description: "Replace the legacy billing pipeline",
		Cost:        120000,
		Duration:    "8 weeks",
		TotalSeats:  4,
		Tags:        []string{"go", "postgres"},
	}
}

func TestCreateProject(t *testing.T) {
	env := newTestEnv(t)
	client := env.store.addUser("Client One", "client@example.com", models.UserRoleClient)

	resp, err := env.projects.Create(client.Email, createProjectRequest())
	require.NoError(t, err)

	assert.Equal(t, client.ID, resp.ClientID)
	assert.Equal(t, 4, resp.TotalSeats)
	assert.Equal(t, 4, resp.SeatsAvailable, "a new project opens with all seats free")
	assert.Equal(t, models.ProjectStatusActive, resp.Status)
	assert.Equal(t, []string{"go", "postgres"}, resp.Tags)
}

func TestCreateProjectEmployeeForbidden(t *testing.T) {
	env := newTestEnv(t)
	emp := env.store.addUser("Emp One", "emp@example.com", models.UserRoleEmployee)

	_, err := env.projects.Create(emp.Email, createProjectRequest())
	requireCode(t, err, appErrors.CodeForbidden)
}

func TestGetProject(t *testing.T) {
	env := newTestEnv(t)
	client := env.store.addUser("Client One", "client@example.com", models.UserRoleClient)
	project := env.store.addProject(client.ID, 2, models.ProjectStatusActive)

	resp, err := env.projects.Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, resp.ID)
	require.NotNil(t, resp.Client)
	assert.Equal(t, client.Name, resp.Client.Name)

	_, err = env.projects.Get("not-a-uuid")
	requireCode(t, err, appErrors.CodeInvalidID)
}

func TestListProjectsPagination(t *testing.T) {
	env := newTestEnv(t)
	client := env.store.addUser("Client One", "client@example.com", models.UserRoleClient)
	for i := 0; i < 15; i++ {
		env.store.addProject(client.ID, 2, models.ProjectStatusActive)
	}

	resp, err := env.projects.List(&dto.ProjectFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Projects, 10, "default page size")
	assert.Equal(t, int64(15), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp, err = env.projects.List(&dto.ProjectFilterRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Projects, 5)
}

func TestUpdateProjectSeatBounds(t *testing.T) {
	env := newTestEnv(t)
	client := env.store.addUser("Client One", "client@example.com", models.UserRoleClient)
	project := env.store.addProject(client.ID, 4, models.ProjectStatusActive)

	over := 5
	_, err := env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{SeatsAvailable: &over})
	requireCode(t, err, appErrors.CodeSeatCountOutOfRange)

	negative := -1
	_, err = env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{SeatsAvailable: &negative})
	requireCode(t, err, appErrors.CodeSeatCountOutOfRange)

	// Raising capacity makes a larger seat count legal.
	seats, total := 5, 6
	resp, err := env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{
		SeatsAvailable: &seats,
		TotalSeats:     &total,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.SeatsAvailable)
	assert.Equal(t, 6, resp.TotalSeats)
}

func TestUpdateProjectStatusNormalization(t *testing.T) {
	env := newTestEnv(t)
	client := env.store.addUser("Client One", "client@example.com", models.UserRoleClient)

	t.Run("draining seats flips active to full", func(t *testing.T) {
		project := env.store.addProject(client.ID, 4, models.ProjectStatusActive)
		zero := 0
		resp, err := env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{SeatsAvailable: &zero})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusFull, resp.Status)
	})

	t.Run("freeing seats flips full back to active", func(t *testing.T) {
		project := env.store.addProject(client.ID, 4, models.ProjectStatusActive)
		env.store.mu.Lock()
		env.store.projects[project.ID].SeatsAvailable = 0
		env.store.projects[project.ID].Status = models.ProjectStatusFull
		env.store.mu.Unlock()

		two := 2
		resp, err := env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{SeatsAvailable: &two})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusActive, resp.Status)
	})

	t.Run("inactive is left alone", func(t *testing.T) {
		project := env.store.addProject(client.ID, 4, models.ProjectStatusInactive)
		two := 2
		resp, err := env.projects.Update(client.Email, project.ID, &dto.UpdateProjectRequest{SeatsAvailable: &two})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusInactive, resp.Status)
	})
}

func TestUpdateProjectOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.store.addUser("Owner", "owner@example.com", models.UserRoleClient)
	rival := env.store.addUser("Rival", "rival@example.com", models.UserRoleClient)
	admin := env.store.addUser("Admin", "admin@example.com", models.UserRoleAdmin)
	project := env.store.addProject(owner.ID, 4, models.ProjectStatusActive)

	title := "Renamed"
	_, err := env.projects.Update(rival.Email, project.ID, &dto.UpdateProjectRequest{Title: &title})
	requireCode(t, err, appErrors.CodeForbidden)

	resp, err := env.projects.Update(admin.Email, project.ID, &dto.UpdateProjectRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Title)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv(t)
	owner := env.store.addUser("Owner", "owner@example.com", models.UserRoleClient)
	rival := env.store.addUser("Rival", "rival@example.com", models.UserRoleClient)
	project := env.store.addProject(owner.ID, 4, models.ProjectStatusActive)

	err := env.projects.Delete(rival.Email, project.ID)
	requireCode(t, err, appErrors.CodeForbidden)

	require.NoError(t, env.projects.Delete(owner.Email, project.ID))

	_, err = env.projects.Get(project.ID)
	requireCode(t, err, appErrors.CodeProjectNotFound)
}

package services

import (
	"strings"
	"sync"
	"time"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"

	"github.com/google/uuid"
)

// memStore is the shared backing state for the fake repositories. One
// mutex guards everything so the fake Approve can mimic the real
// repository's transactional check-and-decrement.
type memStore struct {
	mu           sync.Mutex
	users        map[string]*models.User
	projects     map[string]*models.Project
	applications map[string]*models.Application
	assignments  map[string]*models.ProjectAssignment
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[string]*models.User),
		projects:     make(map[string]*models.Project),
		applications: make(map[string]*models.Application),
		assignments:  make(map[string]*models.ProjectAssignment),
	}
}

func (s *memStore) addUser(name, email string, role models.UserRole) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &models.User{
		Name:     name,
		Email:    email,
		Username: strings.SplitN(email, "@", 2)[0],
		Role:     role,
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return u
}

func (s *memStore) addProject(clientID string, seats int, status models.ProjectStatus) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Project{
		ClientID:       clientID,
		Title:          "Test Project",
		Description:    "A project used in tests",
		Cost:           50000,
		Duration:       "4 weeks",
		SeatsAvailable: seats,
		TotalSeats:     seats,
		Status:         status,
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.projects[p.ID] = p
	return p
}

func (s *memStore) addApplication(projectID, employeeID string, status models.ApplicationStatus) *models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &models.Application{
		ProjectID:   projectID,
		EmployeeID:  employeeID,
		CoverLetter: "I would like to join",
		Status:      status,
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	s.applications[a.ID] = a
	return a
}

func (s *memStore) project(id string) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.projects[id]
}

func (s *memStore) application(id string) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.applications[id]
}

func (s *memStore) assignmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assignments)
}

// --- user repository ---

type fakeUserRepo struct{ s *memStore }

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if u, ok := f.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	f.s.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateByEmail(email string, fields map[string]interface{}) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email != email {
			continue
		}
		if v, ok := fields["name"].(string); ok {
			u.Name = v
		}
		if v, ok := fields["username"].(string); ok {
			u.Username = v
		}
		if v, ok := fields["role"].(string); ok {
			u.Role = models.UserRole(v)
		}
		if v, ok := fields["employee_type"].(string); ok {
			u.EmployeeType = models.EmployeeType(v)
		}
		if v, ok := fields["engineering_field"].(string); ok {
			u.EngineeringField = v
		}
		if v, ok := fields["profile_picture"].(string); ok {
			u.ProfilePicture = v
		}
		return nil
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.User
	for _, u := range f.s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

// --- project repository ---

type fakeProjectRepo struct{ s *memStore }

func (f *fakeProjectRepo) Create(project *models.Project) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.CreatedAt = time.Now()
	cp := *project
	f.s.projects[project.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	cp := *p
	if client, ok := f.s.users[p.ClientID]; ok {
		ccp := *client
		cp.Client = &ccp
	}
	return &cp, nil
}

func (f *fakeProjectRepo) FindWithFilter(criteria repositories.ProjectFilter) ([]models.Project, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Project
	for _, p := range f.s.projects {
		if criteria.Status != "" && p.Status != criteria.Status {
			continue
		}
		if criteria.ClientID != "" && p.ClientID != criteria.ClientID {
			continue
		}
		out = append(out, *p)
	}
	total := int64(len(out))

	start := (criteria.Page - 1) * criteria.PageSize
	if start > len(out) {
		start = len(out)
	}
	end := start + criteria.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeProjectRepo) FindIDsByClient(clientID string) ([]string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var ids []string
	for _, p := range f.s.projects {
		if p.ClientID == clientID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (f *fakeProjectRepo) UpdateFields(id string, fields map[string]interface{}) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[id]
	if !ok {
		return repositories.ErrProjectNotFound
	}
	if v, ok := fields["title"].(string); ok {
		p.Title = v
	}
	if v, ok := fields["description"].(string); ok {
		p.Description = v
	}
	if v, ok := fields["cost"].(float64); ok {
		p.Cost = v
	}
	if v, ok := fields["duration"].(string); ok {
		p.Duration = v
	}
	if v, ok := fields["seats_available"].(int); ok {
		p.SeatsAvailable = v
	}
	if v, ok := fields["total_seats"].(int); ok {
		p.TotalSeats = v
	}
	if v, ok := fields["status"].(models.ProjectStatus); ok {
		p.Status = v
	}
	return nil
}

func (f *fakeProjectRepo) Delete(id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(f.s.projects, id)
	return nil
}

// --- application repository ---

type fakeApplicationRepo struct{ s *memStore }

func (f *fakeApplicationRepo) Create(app *models.Application) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.applications {
		if a.ProjectID == app.ProjectID && a.EmployeeID == app.EmployeeID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now()
	cp := *app
	f.s.applications[app.ID] = &cp
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if a, ok := f.s.applications[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) FindByIDWithProject(id string) (*models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	a, ok := f.s.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	f.attachRelations(&cp)
	return &cp, nil
}

func (f *fakeApplicationRepo) FindByProjectAndEmployee(projectID, employeeID string) (*models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.applications {
		if a.ProjectID == projectID && a.EmployeeID == employeeID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) FindByEmployee(employeeID string) ([]models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Application
	for _, a := range f.s.applications {
		if a.EmployeeID == employeeID {
			cp := *a
			f.attachRelations(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByProject(projectID string) ([]models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Application
	for _, a := range f.s.applications {
		if a.ProjectID == projectID {
			cp := *a
			f.attachRelations(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByProjects(projectIDs []string) ([]models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	idSet := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		idSet[id] = true
	}
	var out []models.Application
	for _, a := range f.s.applications {
		if idSet[a.ProjectID] {
			cp := *a
			f.attachRelations(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Approve(applicationID, projectID string, reviewedAt time.Time) (*models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	p, ok := f.s.projects[projectID]
	if !ok || p.SeatsAvailable <= 0 {
		return nil, repositories.ErrNoSeatsAvailable
	}
	a, ok := f.s.applications[applicationID]
	if !ok || a.Status != models.ApplicationStatusPending {
		return nil, repositories.ErrApplicationProcessed
	}

	p.SeatsAvailable--
	if p.SeatsAvailable == 0 {
		p.Status = models.ProjectStatusFull
	}
	a.Status = models.ApplicationStatusApproved
	at := reviewedAt
	a.ReviewedAt = &at

	cp := *a
	return &cp, nil
}

func (f *fakeApplicationRepo) Reject(applicationID string, reviewedAt time.Time, reason string) (*models.Application, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	a, ok := f.s.applications[applicationID]
	if !ok || a.Status != models.ApplicationStatusPending {
		return nil, repositories.ErrApplicationProcessed
	}

	a.Status = models.ApplicationStatusRejected
	at := reviewedAt
	a.ReviewedAt = &at
	a.RejectionReason = reason

	cp := *a
	return &cp, nil
}

// attachRelations must be called with the store lock held.
func (f *fakeApplicationRepo) attachRelations(a *models.Application) {
	if p, ok := f.s.projects[a.ProjectID]; ok {
		cp := *p
		a.Project = &cp
	}
	if u, ok := f.s.users[a.EmployeeID]; ok {
		cp := *u
		a.Employee = &cp
	}
}

// --- assignment repository ---

type fakeAssignmentRepo struct{ s *memStore }

func (f *fakeAssignmentRepo) Create(assignment *models.ProjectAssignment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	cp := *assignment
	f.s.assignments[assignment.ID] = &cp
	return nil
}

func (f *fakeAssignmentRepo) FindByApplication(applicationID string) (*models.ProjectAssignment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.assignments {
		if a.ApplicationID == applicationID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) FindByEmployee(employeeID string) ([]models.ProjectAssignment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.ProjectAssignment
	for _, a := range f.s.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) FindByProject(projectID string) ([]models.ProjectAssignment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.ProjectAssignment
	for _, a := range f.s.assignments {
		if a.ProjectID == projectID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// --- email provider ---

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeProvider struct {
	mu      sync.Mutex
	sent    []sentMail
	failErr error
}

func (p *fakeProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failErr != nil {
		return p.failErr
	}
	p.sent = append(p.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (p *fakeProvider) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func (p *fakeProvider) lastMail() sentMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent[len(p.sent)-1]
}

// --- payment gateway ---

type fakeGateway struct {
	createErr error
	lastNotes map[string]interface{}
	validSig  string
}

func (g *fakeGateway) CreateOrder(amount int64, notes map[string]interface{}) (map[string]interface{}, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.lastNotes = notes
	return map[string]interface{}{"id": "order_test123", "amount": amount, "currency": "INR"}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.validSig
}

package handlers

import (
	"context"
	"net/http"

	"person_registry/internal/models"
	"person_registry/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser *models.User
	signUpErr  error
	authUser   *models.User
	authErr    error
	parseID    int64
	parseErr   error

	lastSignUp       *models.User
	lastAuthUsername string
	lastAuthPassword string
	lastParseToken   string
}

func (m *mockAuth) SignUp(_ context.Context, u *models.User) (*models.User, error) {
	m.lastSignUp = u
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authUser, m.authErr
}

func (m *mockAuth) ParseToken(token string) (int64, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockEntity implements service.Entity[T] with canned responses.
type mockEntity[T any] struct {
	getResult    *T
	getErr       error
	createResult *T
	createErr    error
	updateResult *T
	updateErr    error
	deleteResult *T
	deleteErr    error
	pageResult   *models.Page[T]
	pageErr      error

	lastGetID    int64
	lastCreate   *T
	lastUpdate   *T
	lastDeleteID int64
	lastFilter   string
	lastPage     int
}

func (m *mockEntity[T]) Get(_ context.Context, id int64) (*T, error) {
	m.lastGetID = id
	return m.getResult, m.getErr
}

func (m *mockEntity[T]) Create(_ context.Context, e *T) (*T, error) {
	m.lastCreate = e
	return m.createResult, m.createErr
}

func (m *mockEntity[T]) Update(_ context.Context, e *T) (*T, error) {
	m.lastUpdate = e
	return m.updateResult, m.updateErr
}

func (m *mockEntity[T]) Delete(_ context.Context, id int64) (*T, error) {
	m.lastDeleteID = id
	return m.deleteResult, m.deleteErr
}

func (m *mockEntity[T]) GetPage(_ context.Context, filter string, page int) (*models.Page[T], error) {
	m.lastFilter = filter
	m.lastPage = page
	return m.pageResult, m.pageErr
}

// newTestRouter builds a router over the given service aggregate, filling
// any nil sub-service with an empty mock.
func newTestRouter(s *service.Service) http.Handler {
	if s.People == nil {
		s.People = &mockEntity[models.Person]{}
	}
	if s.Uploads == nil {
		s.Uploads = &mockEntity[models.Upload]{}
	}
	if s.Users == nil {
		s.Users = &mockEntity[models.User]{}
	}
	if s.Authorization == nil {
		s.Authorization = &mockAuth{}
	}
	if s.Feed == nil {
		s.Feed = service.NewChangeFeed()
	}
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"person_registry/internal/models"
	"person_registry/internal/service"
)

// crudRouter builds a router where every protected call authenticates as
// user 7 against the given people mock.
func crudRouter(people *mockEntity[models.Person]) http.Handler {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 7},
		People:        people,
	})
}

func TestGetPage(t *testing.T) {
	people := &mockEntity[models.Person]{
		pageResult: &models.Page[models.Person]{
			Results: []*models.Person{
				{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
				{ID: 2, FirstName: "Alan", LastName: "Turing"},
			},
			PageNumber: 2,
			PageSize:   10,
			TotalCount: 12,
		},
	}
	router := crudRouter(people)

	w := performRequest(t, router, http.MethodGet, "/api/v1/people?filter=lo&page=2", "", authHeader("tok"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if people.lastFilter != "lo" || people.lastPage != 2 {
		t.Fatalf("service received filter=%q page=%d", people.lastFilter, people.lastPage)
	}

	var page models.Page[models.Person]
	decodeBody(t, w, &page)
	if page.TotalCount != 12 || page.PageNumber != 2 || len(page.Results) != 2 {
		t.Fatalf("unexpected page envelope: %+v", page)
	}
}

func TestGetPage_DefaultsToFirstPage(t *testing.T) {
	people := &mockEntity[models.Person]{
		pageResult: &models.Page[models.Person]{PageNumber: 1, PageSize: 10},
	}
	router := crudRouter(people)

	w := performRequest(t, router, http.MethodGet, "/api/v1/people", "", authHeader("tok"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if people.lastPage != 1 || people.lastFilter != "" {
		t.Fatalf("service received filter=%q page=%d", people.lastFilter, people.lastPage)
	}
}

func TestGetPage_BadPageParam(t *testing.T) {
	router := crudRouter(&mockEntity[models.Person]{})

	w := performRequest(t, router, http.MethodGet, "/api/v1/people?page=abc", "", authHeader("tok"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetByID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mock       *mockEntity[models.Person]
		wantStatus int
	}{
		{
			name:       "found",
			target:     "/api/v1/people/5",
			mock:       &mockEntity[models.Person]{getResult: &models.Person{ID: 5, FirstName: "Ada"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing",
			target:     "/api/v1/people/999",
			mock:       &mockEntity[models.Person]{getErr: models.ErrNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			target:     "/api/v1/people/abc",
			mock:       &mockEntity[models.Person]{},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := crudRouter(tt.mock)

			w := performRequest(t, router, http.MethodGet, tt.target, "", authHeader("tok"))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var got models.Person
				decodeBody(t, w, &got)
				if got.ID != 5 || got.FirstName != "Ada" {
					t.Fatalf("unexpected person: %+v", got)
				}
			}
		})
	}
}

func TestCreate(t *testing.T) {
	people := &mockEntity[models.Person]{
		createResult: &models.Person{ID: 9, FirstName: "Grace", LastName: "Hopper"},
	}
	router := crudRouter(people)

	body := `{"first_name":"Grace","last_name":"Hopper","phone_number":"555 0102"}`
	w := performRequest(t, router, http.MethodPost, "/api/v1/people", body, authHeader("tok"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var got models.Person
	decodeBody(t, w, &got)
	if got.ID != 9 {
		t.Fatalf("expected the assigned id in the response, got %+v", got)
	}
	if people.lastCreate == nil || people.lastCreate.FirstName != "Grace" {
		t.Fatalf("service received %+v", people.lastCreate)
	}
}

func TestCreate_ValidationError(t *testing.T) {
	router := crudRouter(&mockEntity[models.Person]{
		createErr: fmt.Errorf("%w: first name is required", models.ErrValidation),
	})

	w := performRequest(t, router, http.MethodPost, "/api/v1/people", `{"last_name":"Hopper"}`, authHeader("tok"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdate_PathOwnsIdentity(t *testing.T) {
	people := &mockEntity[models.Person]{
		updateResult: &models.Person{ID: 5, FirstName: "Ada", LastName: "King"},
	}
	router := crudRouter(people)

	// The body claims a different id; the path must win.
	body := `{"id":999,"first_name":"Ada","last_name":"King","phone_number":"555 0100"}`
	w := performRequest(t, router, http.MethodPut, "/api/v1/people/5", body, authHeader("tok"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if people.lastUpdate == nil || people.lastUpdate.ID != 5 {
		t.Fatalf("service received id %+v, want 5", people.lastUpdate)
	}
}

func TestUpdate_MissingIsNotFound(t *testing.T) {
	router := crudRouter(&mockEntity[models.Person]{updateErr: models.ErrNotFound})

	body := `{"first_name":"Ghost","last_name":"Writer","phone_number":"555 0100"}`
	w := performRequest(t, router, http.MethodPut, "/api/v1/people/999", body, authHeader("tok"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	people := &mockEntity[models.Person]{
		deleteResult: &models.Person{ID: 5, FirstName: "Ada", LastName: "Lovelace"},
	}
	router := crudRouter(people)

	w := performRequest(t, router, http.MethodDelete, "/api/v1/people/5", "", authHeader("tok"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if people.lastDeleteID != 5 {
		t.Fatalf("service received id %d, want 5", people.lastDeleteID)
	}

	var got models.Person
	decodeBody(t, w, &got)
	if got.ID != 5 || got.LastName != "Lovelace" {
		t.Fatalf("expected the removed record back, got %+v", got)
	}
}

func TestUsersCreate_DuplicateIsConflict(t *testing.T) {
	users := &mockEntity[models.User]{createErr: models.ErrConflict}
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 7},
		Users:         users,
	})

	body := `{"username":"alice","password":"S3cret!"}`
	w := performRequest(t, router, http.MethodPost, "/api/v1/users", body, authHeader("tok"))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestStorageOutageIsGeneric503(t *testing.T) {
	router := crudRouter(&mockEntity[models.Person]{
		getErr: fmt.Errorf("get person: %w: disk I/O error", models.ErrTransientStorage),
	})

	w := performRequest(t, router, http.MethodGet, "/api/v1/people/5", "", authHeader("tok"))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "storage temporarily unavailable" {
		t.Fatalf("body must not leak storage details, got %q", body["error"])
	}
}

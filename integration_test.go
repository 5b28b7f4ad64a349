package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-app/config"
	"notes-app/handlers"
	"notes-app/models"
	"notes-app/service"
	"notes-app/store"
	"notes-app/token"

	"github.com/go-chi/chi/v5"
)

type testApp struct {
	router *chi.Mux
	users  *store.MemUserStore
}

func newTestApp() *testApp {
	users := store.NewMemUserStore()
	notes := store.NewMemNoteStore()
	tokens := token.NewService("integration-secret", time.Hour)
	authSvc := service.NewAuthService(users, tokens)
	noteSvc := service.NewNoteService(notes, users)

	router := newRouter(
		&handlers.AuthHandler{Auth: authSvc},
		&handlers.NoteHandler{Notes: noteSvc},
		tokens,
	)
	return &testApp{router: router, users: users}
}

func (a *testApp) request(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) signup(t *testing.T, name, email, password string) {
	t.Helper()
	rr := a.request(t, "POST", "/api/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Signup for %s: expected 201, got %d (%s)", email, rr.Code, rr.Body.String())
	}
}

func (a *testApp) signin(t *testing.T, email, password string) string {
	t.Helper()
	rr := a.request(t, "POST", "/api/auth/signin", "", map[string]string{
		"email": email, "password": password,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Signin for %s: expected 200, got %d (%s)", email, rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatal("Signin response missing token")
	}
	return resp.Token
}

func TestSignupSigninFlow(t *testing.T) {
	app := newTestApp()

	app.signup(t, "Alice", "alice@example.com", "password123")
	app.signin(t, "alice@example.com", "password123")

	t.Run("Duplicate signup rejected", func(t *testing.T) {
		rr := app.request(t, "POST", "/api/auth/signup", "", map[string]string{
			"name": "Clone", "email": "alice@example.com", "password": "different",
		})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rr.Code)
		}
	})

	t.Run("Notes require a token", func(t *testing.T) {
		rr := app.request(t, "GET", "/api/notes", "", nil)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rr.Code)
		}
	})
}

func TestNoteLifecycle(t *testing.T) {
	app := newTestApp()
	app.signup(t, "Alice", "alice@example.com", "password123")
	app.signup(t, "Bob", "bob@example.com", "password123")
	alice := app.signin(t, "alice@example.com", "password123")
	bob := app.signin(t, "bob@example.com", "password123")

	// Create
	rr := app.request(t, "POST", "/api/notes", alice, map[string]string{
		"title": "Groceries", "description": "milk, eggs",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d", rr.Code)
	}
	var created models.Note
	json.Unmarshal(rr.Body.Bytes(), &created)

	// Bob cannot see, edit, or delete Alice's note
	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/notes/1"},
		{"PUT", "/api/notes/1"},
		{"DELETE", "/api/notes/1"},
	} {
		var body any
		if tc.method == "PUT" {
			body = map[string]string{"title": "x", "description": "y"}
		}
		rr := app.request(t, tc.method, tc.path, bob, body)
		if rr.Code != http.StatusForbidden {
			t.Errorf("%s %s as Bob: expected 403, got %d", tc.method, tc.path, rr.Code)
		}
	}

	// Update
	rr = app.request(t, "PUT", "/api/notes/1", alice, map[string]string{
		"title": "Groceries", "description": "milk, eggs, bread",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Update: expected 200, got %d", rr.Code)
	}
	var updated models.Note
	json.Unmarshal(rr.Body.Bytes(), &updated)
	if updated.ID != created.ID || updated.UserID != created.UserID {
		t.Error("Update changed id or owner")
	}
	if updated.Description != "milk, eggs, bread" {
		t.Errorf("Update did not apply: %+v", updated)
	}

	// Delete, then every read is a 404
	rr = app.request(t, "DELETE", "/api/notes/1", alice, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Delete: expected 200, got %d", rr.Code)
	}
	rr = app.request(t, "GET", "/api/notes/1", alice, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Get after delete: expected 404, got %d", rr.Code)
	}
}

func TestAdminSeesAllNotes(t *testing.T) {
	app := newTestApp()

	err := seedAdmin(context.Background(), app.users, config.App{
		AdminEmail: "admin@example.com", AdminPassword: "adminpass",
	})
	if err != nil {
		t.Fatalf("seedAdmin returned error: %v", err)
	}

	app.signup(t, "Alice", "alice@example.com", "password123")
	alice := app.signin(t, "alice@example.com", "password123")
	admin := app.signin(t, "admin@example.com", "adminpass")

	rr := app.request(t, "POST", "/api/notes", alice, map[string]string{
		"title": "Alice note", "description": "hers",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d", rr.Code)
	}

	t.Run("Admin listing includes other users' notes", func(t *testing.T) {
		rr := app.request(t, "GET", "/api/notes", admin, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
		var notes []models.Note
		json.Unmarshal(rr.Body.Bytes(), &notes)
		if len(notes) != 1 || notes[0].Title != "Alice note" {
			t.Errorf("Expected Alice's note in admin listing, got %+v", notes)
		}
	})

	t.Run("Admin can manage other users' notes", func(t *testing.T) {
		rr := app.request(t, "PUT", "/api/notes/1", admin, map[string]string{
			"title": "Edited by admin", "description": "x",
		})
		if rr.Code != http.StatusOK {
			t.Errorf("Admin update: expected 200, got %d", rr.Code)
		}
		rr = app.request(t, "DELETE", "/api/notes/1", admin, nil)
		if rr.Code != http.StatusOK {
			t.Errorf("Admin delete: expected 200, got %d", rr.Code)
		}
	})
}

func TestSeedAdminIdempotent(t *testing.T) {
	users := store.NewMemUserStore()
	cfg := config.App{AdminEmail: "admin@example.com", AdminPassword: "adminpass"}

	if err := seedAdmin(context.Background(), users, cfg); err != nil {
		t.Fatalf("First seed returned error: %v", err)
	}
	if err := seedAdmin(context.Background(), users, cfg); err != nil {
		t.Fatalf("Second seed returned error: %v", err)
	}

	u, err := users.ByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("Admin not found after seeding: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("Expected role ADMIN, got %s", u.Role)
	}

	// No admin configured is a no-op
	if err := seedAdmin(context.Background(), store.NewMemUserStore(), config.App{}); err != nil {
		t.Errorf("Seeding with empty config returned error: %v", err)
	}
	if _, err := store.NewMemUserStore().ByEmail(context.Background(), "admin@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func postJSON(e *env, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	e := newEnv(t)

	w := postJSON(e, "/api/users/signup", handler.SignupRequest{
		Name:     "Ada",
		Company:  "Fresh Foods",
		Email:    "ada@freshfoods.test",
		Password: "secret-pw",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.UserData.Token == "" {
		t.Error("expected a token in the signup response")
	}
	if resp.UserData.UserID == 0 {
		t.Error("expected a user id in the signup response")
	}
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "ada@freshfoods.test")

	w := postJSON(e, "/api/users/signup", handler.SignupRequest{
		Name:     "Ada Again",
		Company:  "Fresh Foods",
		Email:    "ada@freshfoods.test",
		Password: "secret-pw",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestSignupHandler_InvalidInput(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		req  handler.SignupRequest
	}{
		{"Missing name", handler.SignupRequest{Company: "Co", Email: "a@b.test", Password: "secret-pw"}},
		{"Bad email", handler.SignupRequest{Name: "Ada", Company: "Co", Email: "not-an-email", Password: "secret-pw"}},
		{"Short password", handler.SignupRequest{Name: "Ada", Company: "Co", Email: "a@b.test", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(e, "/api/users/signup", tt.req); w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "ada@freshfoods.test")

	w := postJSON(e, "/api/users/login", handler.CredentialsRequest{
		Email:    "ada@freshfoods.test",
		Password: "secret-pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.UserData.Token == "" {
		t.Error("expected a token in the login response")
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "ada@freshfoods.test")

	tests := []struct {
		name  string
		creds handler.CredentialsRequest
	}{
		{"Wrong password", handler.CredentialsRequest{Email: "ada@freshfoods.test", Password: "wrong-pw"}},
		{"Unknown email", handler.CredentialsRequest{Email: "nobody@freshfoods.test", Password: "secret-pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(e, "/api/users/login", tt.creds); w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}

func TestGetUsersHandler(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "ada@freshfoods.test")
	e.signup(t, "bob@freshfoods.test")

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	if strings.Contains(body, "password") {
		t.Error("expected password hashes to be omitted from the response")
	}

	var resp handler.UsersResult
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Errorf("expected 2 users, got %d", len(resp.Users))
	}
}

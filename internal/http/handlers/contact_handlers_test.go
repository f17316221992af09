package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func validContactRequest() handler.ContactRequest {
	phone := "+44 20 7946 0123"
	return handler.ContactRequest{
		Name:     "Ada",
		Company:  "Fresh Foods",
		Email:    "ada@freshfoods.test",
		Phone:    &phone,
		Comments: "Interested in your frozen range",
	}
}

func TestCreateContactItemHandler(t *testing.T) {
	e := newEnv(t)

	w := postJSON(e, "/api/contact/", validContactRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ContactResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ContactItem.ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if resp.ContactItem.Email != "ada@freshfoods.test" {
		t.Errorf("expected stored email, got %q", resp.ContactItem.Email)
	}
	if resp.ContactItem.Date.IsZero() {
		t.Error("expected the submission date to be set")
	}
}

func TestCreateContactItemHandler_OptionalFields(t *testing.T) {
	e := newEnv(t)

	req := validContactRequest()
	req.Phone = nil
	req.Comments = ""

	w := postJSON(e, "/api/contact/", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ContactResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ContactItem.Phone != nil {
		t.Errorf("expected phone null, got %v", *resp.ContactItem.Phone)
	}
}

func TestCreateContactItemHandler_InvalidInput(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name   string
		mutate func(*handler.ContactRequest)
	}{
		{"Missing name", func(r *handler.ContactRequest) { r.Name = "" }},
		{"Missing company", func(r *handler.ContactRequest) { r.Company = "" }},
		{"Bad email", func(r *handler.ContactRequest) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.mutate(&req)
			if w := postJSON(e, "/api/contact/", req); w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d", w.Code)
			}
		})
	}
}

func TestGetContactItemsHandler(t *testing.T) {
	e := newEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an empty contact list, got %d", w.Code)
	}

	if w := postJSON(e, "/api/contact/", validContactRequest()); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/contact/", nil)
	w = httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ContactsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Contact) != 1 || resp.Contact[0].Name != "Ada" {
		t.Errorf("expected the submitted contact item, got %+v", resp.Contact)
	}
}

package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/inventory-app/internal/http"
	handler "github.com/rogerio-castellano/inventory-app/internal/http/handlers"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "alice", Password: "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	reg, _ := decodeBody[handler.RegisterResult](w)
	if reg.Token == "" {
		t.Errorf("expected a token on registration")
	}

	// duplicate username conflicts
	w = doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "alice", Password: "secret123"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "alice", Password: "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	login, _ := decodeBody[handler.LoginResult](w)
	if login.Token == "" {
		t.Errorf("expected a token on login")
	}

	w = doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "alice", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestRegisterHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name    string
		payload handler.CredentialsRequest
	}{
		{"missing password", handler.CredentialsRequest{Username: "bob"}},
		{"missing username", handler.CredentialsRequest{Password: "secret123"}},
		{"short username", handler.CredentialsRequest{Username: "ab", Password: "secret123"}},
		{"short password", handler.CredentialsRequest{Username: "bob", Password: "123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/register", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestAuthRequiredRouter_GatesMutations(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter(api.RouterOptions{RequireAuth: true})

	// reads stay open
	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected open read, got %d", w.Code)
	}

	// mutation without a token is rejected
	w = createProduct(r, map[string]any{"name": "Locked", "price": 1.0, "quantity": 1})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}

	// with a fresh token it goes through
	w = doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "carol", Password: "secret123"})
	reg, _ := decodeBody[handler.RegisterResult](w)

	body, _ := json.Marshal(map[string]any{"name": "Unlocked", "price": 1.0, "quantity": 1})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created with token, got %d", rec.Code)
	}
}

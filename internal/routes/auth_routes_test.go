package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"medicab-server/internal/bootstrap"
	"medicab-server/internal/models"
	"medicab-server/internal/storage"
	"medicab-server/internal/utils"
)

func TestAuth_LoginSessionLogout(t *testing.T) {
	router, backend := newTestRouter(t, "")
	bootstrap.InitializeDemoData(context.Background(), storage.New(backend, storage.Options{}))

	w := perform(router, http.MethodGet, "/api/v1/auth/session", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 without a session, got %d %s", w.Code, w.Body.String())
	}

	w = perform(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"dr.ben.ali@medicab.tn","password":"doctor123"}`,
		map[string]string{"Content-Type": "application/json"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for login, got %d %s", w.Code, w.Body.String())
	}
	var user models.UserSanitized
	if err := json.Unmarshal(decode(t, w)["data"], &user); err != nil || user.ID != "doctor-1" {
		t.Errorf("Expected doctor-1 in the login response, got %+v (%v)", user, err)
	}

	w = perform(router, http.MethodGet, "/api/v1/auth/session", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for session, got %d %s", w.Code, w.Body.String())
	}
	var session models.Session
	if err := json.Unmarshal(decode(t, w)["data"], &session); err != nil || session.Profile.ID != "doctor-1" {
		t.Errorf("Expected the doctor session, got %+v (%v)", session, err)
	}

	w = perform(router, http.MethodPost, "/api/v1/auth/logout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for logout, got %d %s", w.Code, w.Body.String())
	}
	if _, err := backend.Get(context.Background(), storage.KeySession); err == nil {
		t.Error("Expected the session to be removed")
	}
}

func TestAuth_LoginFailures(t *testing.T) {
	router, backend := newTestRouter(t, "")
	bootstrap.InitializeDemoData(context.Background(), storage.New(backend, storage.Options{}))
	header := map[string]string{"Content-Type": "application/json"}

	w := perform(router, http.MethodPost, "/api/v1/auth/login", `{"email":"dr.ben.ali@medicab.tn","password":"wrong"}`, header)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d %s", w.Code, w.Body.String())
	}
	var resp utils.ResponseData
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "Email ou mot de passe incorrect" {
		t.Errorf("Expected the credentials error, got %q", resp.Error)
	}

	w = perform(router, http.MethodPost, "/api/v1/auth/login", `{"email":"dr.ben.ali@medicab.tn"}`, header)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing password, got %d", w.Code)
	}
	w = perform(router, http.MethodPost, "/api/v1/auth/login", `not json`, header)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a malformed body, got %d", w.Code)
	}
}

func TestAuth_Register(t *testing.T) {
	router, backend := newTestRouter(t, "")
	bootstrap.InitializeDemoData(context.Background(), storage.New(backend, storage.Options{}))
	header := map[string]string{"Content-Type": "application/json"}

	w := perform(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@x.tn","password":"secret","name":"Dr. Nouveau","role":"doctor","specialty":"Pédiatrie"}`, header)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", w.Code, w.Body.String())
	}
	var user models.UserSanitized
	if err := json.Unmarshal(decode(t, w)["data"], &user); err != nil || user.Status != models.UserStatusSuspended {
		t.Errorf("Expected a suspended doctor, got %+v (%v)", user, err)
	}
	if _, ok := decode(t, w)["password"]; ok {
		t.Error("Expected no password in the response")
	}

	w = perform(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@x.tn","password":"secret","name":"Copie","role":"secretary"}`, header)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a duplicate email, got %d", w.Code)
	}

	w = perform(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"p@x.tn","password":"secret","name":"P","role":"patient"}`, header)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown role, got %d", w.Code)
	}
}

func TestAuth_RequiresTokenWhenSecretSet(t *testing.T) {
	router, _ := newTestRouter(t, "shared-secret")
	w := perform(router, http.MethodGet, "/api/v1/auth/session", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", w.Code)
	}
}

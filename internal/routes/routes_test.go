package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"medicab-server/internal/auth"
	"medicab-server/internal/config"
	"medicab-server/internal/storage"
	"medicab-server/internal/utils"
)

func newTestRouter(t *testing.T, secret string) (*gin.Engine, *storage.MemoryBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := storage.NewMemoryBackend()
	authService := auth.NewService(storage.New(backend, storage.Options{}))
	return NewRouter(backend, authService, &config.Config{Origin: "*", KVAPISecret: secret}), backend
}

func perform(router http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, "")
	w := perform(router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"UP"`) {
		t.Errorf("Expected UP, got %d %s", w.Code, w.Body.String())
	}
}

func TestKV_SetGetDelete(t *testing.T) {
	router, backend := newTestRouter(t, "")

	w := perform(router, http.MethodPut, "/api/v1/kv/medicab_users", `[{"id":"admin-1"}]`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for PUT, got %d %s", w.Code, w.Body.String())
	}
	if v, _ := backend.Get(context.Background(), "medicab_users"); string(v) != `[{"id":"admin-1"}]` {
		t.Errorf("Expected value stored, got %s", v)
	}

	w = perform(router, http.MethodGet, "/api/v1/kv/medicab_users", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for GET, got %d", w.Code)
	}
	if data := decode(t, w)["data"]; string(data) != `[{"id":"admin-1"}]` {
		t.Errorf("Unexpected data: %s", data)
	}

	w = perform(router, http.MethodPost, "/api/v1/kv/medicab_users", `[]`, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for POST, got %d", w.Code)
	}

	w = perform(router, http.MethodDelete, "/api/v1/kv/medicab_users", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for DELETE, got %d", w.Code)
	}
	w = perform(router, http.MethodDelete, "/api/v1/kv/medicab_users", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected repeated DELETE to succeed, got %d", w.Code)
	}

	w = perform(router, http.MethodGet, "/api/v1/kv/medicab_users", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestKV_RejectsInvalidJSON(t *testing.T) {
	router, backend := newTestRouter(t, "")
	w := perform(router, http.MethodPut, "/api/v1/kv/medicab_users", `{broken`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if _, err := backend.Get(context.Background(), "medicab_users"); err == nil {
		t.Error("Expected nothing stored")
	}
}

func TestKV_RejectsInvalidKey(t *testing.T) {
	router, _ := newTestRouter(t, "")
	long := strings.Repeat("k", 256)
	w := perform(router, http.MethodGet, "/api/v1/kv/"+long, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a long key, got %d", w.Code)
	}
	if msg := string(decode(t, w)["error"]); !strings.Contains(msg, "max") {
		t.Errorf("Expected the failing rule in the message, got %s", msg)
	}
}

func TestKV_RequiresTokenWhenSecretSet(t *testing.T) {
	router, _ := newTestRouter(t, "kv-secret")

	w := perform(router, http.MethodGet, "/api/v1/kv/medicab_session", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", w.Code)
	}

	w = perform(router, http.MethodGet, "/api/v1/kv/medicab_session", "", map[string]string{"Authorization": "Basic abc"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a non-bearer header, got %d", w.Code)
	}

	token, err := utils.GenerateServiceToken("kv-secret", "test", time.Minute)
	if err != nil {
		t.Fatalf("GenerateServiceToken failed: %v", err)
	}
	w = perform(router, http.MethodGet, "/api/v1/kv/medicab_session", "", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 with a valid token, got %d", w.Code)
	}

	w = perform(router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected health to stay public, got %d", w.Code)
	}
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router, _ := newTestRouter(t, "")
	w := perform(router, http.MethodOptions, "/api/v1/kv/medicab_users", "", map[string]string{
		"Origin":                        "https://cabinet.example",
		"Access-Control-Request-Method": "DELETE",
	})
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected any origin allowed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
		t.Errorf("Expected DELETE allowed, got %q", got)
	}
}

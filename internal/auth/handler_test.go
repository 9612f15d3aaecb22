package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *InMemoryAccountRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewInMemoryAccountRepository()
	handler := NewHandler(NewService(repo))

	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)

	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Fatalf("expected a token in the response")
	}
	if resp["goal"] != "general fitness" {
		t.Errorf("expected default goal, got %v", resp["goal"])
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("response must not contain the password field")
	}
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/register", map[string]any{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r, repo := setupAuthRouter(t)

	payload := map[string]any{
		"name":     "Test User",
		"email":    "dup@example.com",
		"password": "Password@123",
	}

	w1 := postJSON(t, r, "/api/auth/register", payload)
	if w1.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w1.Code)
	}

	w2 := postJSON(t, r, "/api/auth/register", payload)
	if w2.Code != http.StatusConflict {
		t.Fatalf("second register: expected 409, got %d", w2.Code)
	}

	// Exactly one record survives.
	if _, err := repo.FindByEmail("dup@example.com"); err != nil {
		t.Fatalf("expected the first record to remain: %v", err)
	}
	count := 0
	for _, a := range repo.accounts {
		if a.Email == "dup@example.com" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 record, got %d", count)
	}
}

func TestLoginFlow(t *testing.T) {
	r, _ := setupAuthRouter(t)

	postJSON(t, r, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    "login@example.com",
		"password": "Password@123",
	})

	w := postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "login@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	wBad := postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "login@example.com",
		"password": "wrong",
	})
	if wBad.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", wBad.Code)
	}
}

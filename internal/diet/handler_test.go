package diet

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/auth"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupDietRouter(t *testing.T, client Client) (*gin.Engine, *auth.InMemoryAccountRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := auth.NewInMemoryAccountRepository()
	handler := NewHandler(NewService(repo, client))

	r.POST("/api/diet/generate", middleware.OptionalAuth(repo), handler.Generate)
	r.POST("/api/diet/save", middleware.AuthMiddleware(repo), handler.Save)

	return r, repo
}

func postDiet(t *testing.T, r *gin.Engine, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpointMissingCredential(t *testing.T) {
	client := &fakeClient{configured: false}
	r, _ := setupDietRouter(t, client)

	w := postDiet(t, r, "/api/diet/generate", "", GenerateRequest{Age: 25})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if client.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", client.calls)
	}
}

func TestGenerateEndpointSuccess(t *testing.T) {
	client := &fakeClient{
		configured: true,
		reply:      `{"targetCalories": 2100, "plan": {"Friday": {"Snack": "Apple"}}}`,
	}
	r, _ := setupDietRouter(t, client)

	w := postDiet(t, r, "/api/diet/generate", "", GenerateRequest{Age: 25, Gender: "male"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success        bool          `json:"success"`
		TargetCalories int           `json:"targetCalories"`
		Plan           auth.MealPlan `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.Success || resp.TargetCalories != 2100 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Plan["Friday"]["Snack"] != "Apple" {
		t.Errorf("unexpected plan: %+v", resp.Plan)
	}
}

func TestSaveEndpointRequiresAuth(t *testing.T) {
	r, _ := setupDietRouter(t, &fakeClient{configured: true})

	w := postDiet(t, r, "/api/diet/save", "", map[string]any{
		"plan":           auth.MealPlan{},
		"targetCalories": 2000,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSaveEndpointPersistsPlan(t *testing.T) {
	r, repo := setupDietRouter(t, &fakeClient{configured: true})

	account := &auth.Account{Name: "Test User", Email: "save@example.com", Password: "hashed"}
	if err := repo.Create(account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	token, err := auth.GenerateToken(account.ID, account.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := postDiet(t, r, "/api/diet/save", token, map[string]any{
		"plan": auth.MealPlan{
			"Wednesday": {"Lunch": "Turkey Wrap"},
		},
		"targetCalories": 2400,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	stored, err := repo.FindByID(account.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.CurrentMealPlan["Wednesday"]["Lunch"] != "Turkey Wrap" {
		t.Errorf("plan not saved: %+v", stored.CurrentMealPlan)
	}
	if stored.DailyCalorieGoal != 2400 {
		t.Errorf("expected calorie goal 2400, got %d", stored.DailyCalorieGoal)
	}
}

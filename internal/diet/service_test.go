package diet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fittrack/internal/auth"
)

type fakeClient struct {
	configured bool
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateNotConfiguredMakesNoCall(t *testing.T) {
	client := &fakeClient{configured: false}
	service := NewService(auth.NewInMemoryAccountRepository(), client)

	_, err := service.Generate(context.Background(), GenerateRequest{Age: 25})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", client.calls)
	}
}

func TestGenerateParsesFencedReply(t *testing.T) {
	client := &fakeClient{
		configured: true,
		reply:      "```json\n{\"targetCalories\": 1800, \"plan\": {\"Monday\": {\"Lunch\": \"Dal & Rice\"}}}\n```",
	}
	service := NewService(auth.NewInMemoryAccountRepository(), client)

	plan, err := service.Generate(context.Background(), GenerateRequest{
		Age:           30,
		Gender:        "female",
		Height:        165,
		Weight:        60,
		Goal:          "weight_loss",
		ActivityLevel: "moderate",
		DietType:      "vegetarian",
		Region:        "South Indian",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TargetCalories != 1800 {
		t.Errorf("expected targetCalories 1800, got %d", plan.TargetCalories)
	}
	if plan.Plan["Monday"]["Lunch"] != "Dal & Rice" {
		t.Errorf("unexpected plan: %+v", plan.Plan)
	}

	// The profile flows into the prompt.
	for _, want := range []string{"Age: 30", "vegetarian", "South Indian"} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	client := &fakeClient{configured: true, err: errors.New("connection refused")}
	service := NewService(auth.NewInMemoryAccountRepository(), client)

	_, err := service.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateUnparseableReply(t *testing.T) {
	client := &fakeClient{configured: true, reply: "sorry, I cannot do that"}
	service := NewService(auth.NewInMemoryAccountRepository(), client)

	_, err := service.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestSaveCopiesPlanAndCalorieGoal(t *testing.T) {
	repo := auth.NewInMemoryAccountRepository()
	account := &auth.Account{Name: "Test User", Email: "save@example.com", Password: "hashed"}
	if err := repo.Create(account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	service := NewService(repo, &fakeClient{configured: true})

	plan := auth.MealPlan{
		"Monday": {"Breakfast": "Oats", "Lunch": "Salad"},
		"Sunday": {"Dinner": "Salmon & Quinoa"},
	}
	if err := service.Save(account.ID, plan, 2300); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, err := repo.FindByID(account.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.DailyCalorieGoal != 2300 {
		t.Errorf("expected calorie goal 2300, got %d", stored.DailyCalorieGoal)
	}
	if stored.CurrentMealPlan["Sunday"]["Dinner"] != "Salmon & Quinoa" {
		t.Errorf("plan not copied verbatim: %+v", stored.CurrentMealPlan)
	}
}

func TestSaveUnknownAccount(t *testing.T) {
	service := NewService(auth.NewInMemoryAccountRepository(), &fakeClient{configured: true})

	err := service.Save("ghost", auth.MealPlan{}, 2000)
	if !errors.Is(err, auth.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

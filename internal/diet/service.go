package diet

import (
	"context"
	"errors"
	"fmt"

	"fittrack/internal/auth"
)

var (
	// ErrNotConfigured means the service credential is absent; no
	// network call is attempted in that case.
	ErrNotConfigured = errors.New("generative service not configured")

	// ErrUpstream covers call failures, timeouts and unparseable
	// replies. No retry anywhere.
	ErrUpstream = errors.New("diet generation failed")
)

type Service struct {
	repo   auth.AccountRepository
	client Client
}

func NewService(repo auth.AccountRepository, client Client) *Service {
	return &Service{repo: repo, client: client}
}

// Generate builds the prompt, sends it upstream and parses the reply.
// The result is returned to the caller only; nothing is persisted.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GeneratedPlan, error) {
	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	prompt := BuildDietPrompt(req)

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	plan, err := ParsePlan(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return plan, nil
}

// Save copies a previously generated plan verbatim onto the account
// and adopts its calorie target as the daily goal.
func (s *Service) Save(accountID string, plan auth.MealPlan, targetCalories int) error {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return err
	}

	account.CurrentMealPlan = plan
	if targetCalories > 0 {
		account.DailyCalorieGoal = targetCalories
	}

	return s.repo.Update(account)
}

package dashboard

import (
	"errors"

	"fittrack/internal/auth"
)

var (
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidMealType = errors.New("invalid meal type")
)

type Service struct {
	repo auth.AccountRepository
}

func NewService(repo auth.AccountRepository) *Service {
	return &Service{repo: repo}
}

// BuildDashboard shapes an already-verified account into the dashboard
// view.
func (s *Service) BuildDashboard(account *auth.Account) DashboardResponse {
	return DashboardResponse{
		Profile: Profile{
			Age:              account.Age,
			Weight:           account.Weight,
			Height:           account.Height,
			FitnessGoal:      account.Goal,
			DailyCalorieGoal: account.DailyCalorieGoal,
			WaterGoal:        account.WaterGoal,
		},
		Stats: Stats{
			CaloriesConsumed: account.TodayStats.CaloriesConsumed,
			CaloriesBurned:   account.TodayStats.CaloriesBurned,
			WaterIntake:      account.TodayStats.WaterIntake,
		},
	}
}

// AddWater increments today's water count by one glass and persists.
// There is no upper bound and no automated date rollover.
func (s *Service) AddWater(accountID string) (int, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return 0, err
	}

	account.TodayStats.WaterIntake++

	if err := s.repo.Update(account); err != nil {
		return 0, err
	}
	return account.TodayStats.WaterIntake, nil
}

// SetMealSlot writes one (day, slot) cell of the weekly plan and
// returns the updated plan. Day and slot must be canonical keys.
func (s *Service) SetMealSlot(accountID, day, mealType, meal string) (auth.MealPlan, error) {
	if !IsValidDay(day) {
		return nil, ErrInvalidDay
	}
	if !IsValidMealSlot(mealType) {
		return nil, ErrInvalidMealType
	}

	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}

	if account.CurrentMealPlan[day] == nil {
		account.CurrentMealPlan[day] = map[string]string{}
	}
	account.CurrentMealPlan[day][mealType] = meal

	if err := s.repo.Update(account); err != nil {
		return nil, err
	}
	return account.CurrentMealPlan, nil
}

// ProfileUpdate carries the editable profile fields. Pointers
// distinguish "leave unchanged" from an explicit zero.
type ProfileUpdate struct {
	Name      *string  `json:"name"`
	Age       *int     `json:"age"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Goal      *string  `json:"goal"`
	WaterGoal *int     `json:"waterGoal"`
}

func (s *Service) UpdateProfile(accountID string, update ProfileUpdate) (*auth.Account, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Age != nil {
		account.Age = *update.Age
	}
	if update.Weight != nil {
		account.Weight = *update.Weight
	}
	if update.Height != nil {
		account.Height = *update.Height
	}
	if update.Goal != nil {
		account.Goal = *update.Goal
	}
	if update.WaterGoal != nil {
		account.WaterGoal = *update.WaterGoal
	}

	if err := s.repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// SetAvatar records the public URL of an uploaded profile picture.
func (s *Service) SetAvatar(accountID, url string) error {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return err
	}

	account.AvatarURL = url
	return s.repo.Update(account)
}

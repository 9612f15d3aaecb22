package auth

import "time"

// MealPlan maps a weekday name to the meals planned for each slot of
// that day (Breakfast/Lunch/Dinner/Snack). Missing entries mean the
// slot is unplanned.
type MealPlan map[string]map[string]string

// TodayStats is the per-day running tally shown on the dashboard.
type TodayStats struct {
	CaloriesConsumed int       `json:"caloriesConsumed"`
	CaloriesBurned   int       `json:"caloriesBurned"`
	WaterIntake      int       `json:"waterIntake"`
	Date             time.Time `json:"date"`
}

// Account is the domain entity.
type Account struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Password         string     `json:"password"`
	Age              int        `json:"age"`
	Weight           float64    `json:"weight"`
	Height           float64    `json:"height"`
	Goal             string     `json:"goal"`
	DailyCalorieGoal int        `json:"dailyCalorieGoal"`
	WaterGoal        int        `json:"waterGoal"`
	AvatarURL        string     `json:"avatarUrl,omitempty"`
	TodayStats       TodayStats `json:"todayStats"`
	CurrentMealPlan  MealPlan   `json:"currentMealPlan"`
}

// Normalize fills defaults so downstream code never branches on
// missing stats or a nil plan. Safe to call on both fresh and loaded
// records.
func (a *Account) Normalize() {
	if a.Goal == "" {
		a.Goal = "general fitness"
	}
	if a.DailyCalorieGoal == 0 {
		a.DailyCalorieGoal = 2000
	}
	if a.WaterGoal == 0 {
		a.WaterGoal = 8
	}
	if a.TodayStats.Date.IsZero() {
		a.TodayStats.Date = time.Now()
	}
	if a.CurrentMealPlan == nil {
		a.CurrentMealPlan = MealPlan{}
	}
}

// Sanitized returns a copy safe to hand to request handlers: the
// password hash is stripped.
func (a *Account) Sanitized() *Account {
	clean := *a
	clean.Password = ""
	return &clean
}

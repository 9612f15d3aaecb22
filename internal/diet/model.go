package diet

import "fittrack/internal/auth"

// GenerateRequest is the profile submitted to the plan generator.
type GenerateRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Goal          string  `json:"goal"`
	ActivityLevel string  `json:"activity_level"`
	DietType      string  `json:"diet_type"`
	Region        string  `json:"region"`
}

// GeneratedPlan is one prompt/response cycle's result. It is not
// persisted until the client explicitly saves it onto an account.
type GeneratedPlan struct {
	TargetCalories int           `json:"targetCalories"`
	Plan           auth.MealPlan `json:"plan"`
}

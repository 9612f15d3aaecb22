package dashboard

// Canonical weekly plan keys. Writes to the plan are validated against
// these; anything else is a client error.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var MealSlots = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

func IsValidDay(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func IsValidMealSlot(slot string) bool {
	for _, s := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Profile is the read-only view returned by GET /api/dashboard.
type Profile struct {
	Age              int     `json:"age"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	FitnessGoal      string  `json:"fitnessGoal"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal"`
	WaterGoal        int     `json:"waterGoal"`
}

// Stats mirrors todayStats without the date; net calories and progress
// are left to the client to derive.
type Stats struct {
	CaloriesConsumed int `json:"caloriesConsumed"`
	CaloriesBurned   int `json:"caloriesBurned"`
	WaterIntake      int `json:"waterIntake"`
}

type DashboardResponse struct {
	Profile Profile `json:"profile"`
	Stats   Stats   `json:"stats"`
}

package diet

import "fmt"

// BuildDietPrompt turns the submitted profile into the instruction
// sent to the generative service. The reply contract is strict JSON:
// a 7-day plan with 4 meals per day plus a daily calorie target.
func BuildDietPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`
Act as an expert nutritionist. Create a personalized 7-day meal plan based on the following profile:
- Age: %d
- Gender: %s
- Height: %.0fcm
- Weight: %.0fkg
- Goal: %s
- Activity Level: %s
- Diet Preference: %s
- Regional Cuisine Preference: %s

Requirements:
1. Calculate the estimated daily calorie target for this profile and goal.
2. Provide a meal plan for Monday through Sunday.
3. Include 4 meals per day: Breakfast, Lunch, Dinner, Snack.
4. Meals should be realistic, simple, and align with the cuisine preference.
5. Return the result STRICTLY as a JSON object with this structure:
{
    "targetCalories": 2200,
    "plan": {
         "Monday": { "Breakfast": "Meal Name (~kcal)", "Lunch": "...", "Dinner": "...", "Snack": "..." },
         ...
    }
}
Do not use Markdown formatting (like `+"```json"+`). Just the raw JSON string.
`,
		req.Age,
		req.Gender,
		req.Height,
		req.Weight,
		req.Goal,
		req.ActivityLevel,
		req.DietType,
		req.Region,
	)
}

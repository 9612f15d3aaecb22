package diet

import "testing"

const planJSON = `{"targetCalories": 2200, "plan": {"Monday": {"Breakfast": "Oatmeal (~350 kcal)"}}}`

func TestParsePlanRawJSON(t *testing.T) {
	plan, err := ParsePlan(planJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TargetCalories != 2200 {
		t.Errorf("expected targetCalories 2200, got %d", plan.TargetCalories)
	}
	if plan.Plan["Monday"]["Breakfast"] != "Oatmeal (~350 kcal)" {
		t.Errorf("unexpected plan contents: %+v", plan.Plan)
	}
}

func TestParsePlanStripsCodeFences(t *testing.T) {
	cases := map[string]string{
		"json fence":    "```json\n" + planJSON + "\n```",
		"bare fence":    "```\n" + planJSON + "\n```",
		"leading prose": "Here is your plan:\n" + planJSON + "\nEnjoy!",
		"whitespace":    "\n\n  " + planJSON + "  \n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			plan, err := ParsePlan(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.TargetCalories != 2200 {
				t.Errorf("expected targetCalories 2200, got %d", plan.TargetCalories)
			}
		})
	}
}

func TestParsePlanInvalidJSON(t *testing.T) {
	if _, err := ParsePlan("the model refused to answer"); err == nil {
		t.Fatalf("expected an error for non-JSON output")
	}
}

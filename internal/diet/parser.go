package diet

import (
	"encoding/json"
	"errors"
	"strings"
)

// cleanResponse strips the markdown code fences models sometimes wrap
// around JSON despite instructions, then narrows to the outermost
// object braces.
func cleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}

	return response
}

// ParsePlan decodes the model's textual reply into a GeneratedPlan.
func ParsePlan(response string) (*GeneratedPlan, error) {
	cleaned := cleanResponse(response)

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, errors.New("invalid plan JSON output")
	}
	return &plan, nil
}

package diet

import (
	"errors"
	"log"
	"net/http"

	"fittrack/internal/auth"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/diet/generate
//
// Runs behind OptionalAuth: anonymous callers get the plan back,
// logged-in callers do too and save it through /api/diet/save when
// they choose to keep it.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	plan, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error: GEMINI_API_KEY not configured."})
			return
		}
		log.Printf("diet generation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate plan. AI service authentication or parsing error."})
		return
	}

	if account := middleware.AccountFromContext(c); account != nil {
		log.Printf("generated diet plan for account %s", account.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"targetCalories": plan.TargetCalories,
		"plan":           plan.Plan,
	})
}

type saveRequest struct {
	Plan           auth.MealPlan `json:"plan"`
	TargetCalories int           `json:"targetCalories"`
}

// POST /api/diet/save
func (h *Handler) Save(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if err := h.service.Save(account.ID, req.Plan, req.TargetCalories); err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plan saved to profile",
	})
}

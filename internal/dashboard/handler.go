package dashboard

import (
	"errors"
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

// GET /api/dashboard
func (h *Handler) GetDashboard(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	c.JSON(http.StatusOK, h.service.BuildDashboard(account))
}

// POST /api/dashboard/water/add
func (h *Handler) AddWater(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	count, err := h.service.AddWater(account.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"waterIntake": count})
}

// GET /api/dashboard/meals
func (h *Handler) GetMealPlan(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	plan := account.CurrentMealPlan
	if plan == nil {
		plan = auth.MealPlan{}
	}
	c.JSON(http.StatusOK, plan)
}

type setMealRequest struct {
	Day  string `json:"day"`
	Type string `json:"type"`
	Meal string `json:"meal"`
}

// POST /api/dashboard/meals
func (h *Handler) SetMealSlot(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	var req setMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	plan, err := h.service.SetMealSlot(account.ID, req.Day, req.Type, req.Meal)
	if err != nil {
		if errors.Is(err, ErrInvalidDay) || errors.Is(err, ErrInvalidMealType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PUT /api/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	var update ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	updated, err := h.service.UpdateProfile(account.ID, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.BuildDashboard(updated))
}

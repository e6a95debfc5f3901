package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(ms *services.MealService) *MealController {
	return &MealController{Meals: ms}
}

type logMealInput struct {
	MealName string    `json:"meal_name" binding:"required,notblank"`
	Calories *float64  `json:"calories" binding:"omitempty,gte=0"`
	Notes    string    `json:"notes"`
	EatenAt  time.Time `json:"eaten_at"`
}

func (mc *MealController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var input logMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.LogMeal(c.Request.Context(), uid, input.MealName, input.Calories, input.Notes, input.EatenAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	meals, err := mc.Meals.ListMeals(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) ListDays(c *gin.Context) {
	uid := c.GetUint("userID")

	days, err := mc.Meals.ListMealDays(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

func (mc *MealController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	mealID, ok := idParam(c)
	if !ok {
		return
	}

	if err := mc.Meals.DeleteMeal(c.Request.Context(), uid, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

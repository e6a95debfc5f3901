package controllers

import (
	"net/http"

	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Hydration *services.HydrationService
}

func NewHydrationController(hs *services.HydrationService) *HydrationController {
	return &HydrationController{Hydration: hs}
}

func (hc *HydrationController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	status, err := hc.Hydration.Today(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

type adjustHydrationInput struct {
	Delta int `json:"delta" binding:"required"`
}

func (hc *HydrationController) Adjust(c *gin.Context) {
	uid := c.GetUint("userID")

	var input adjustHydrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := hc.Hydration.Adjust(c.Request.Context(), uid, input.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

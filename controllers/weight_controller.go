package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WeightController struct {
	Weights *services.WeightService
}

func NewWeightController(ws *services.WeightService) *WeightController {
	return &WeightController{Weights: ws}
}

type logWeightInput struct {
	Weight     float64   `json:"weight" binding:"required,gt=0"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (wc *WeightController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var input logWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := wc.Weights.LogWeight(c.Request.Context(), uid, input.Weight, input.Notes, input.RecordedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (wc *WeightController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	entries, summary, err := wc.Weights.ListWeights(c.Request.Context(), uid, user.TargetWeight)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries":       entries,
		"summary":       summary,
		"target_weight": user.TargetWeight,
	})
}

func (wc *WeightController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	entryID, ok := idParam(c)
	if !ok {
		return
	}

	if err := wc.Weights.DeleteWeight(c.Request.Context(), uid, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

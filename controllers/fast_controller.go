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

type FastController struct {
	Fasts *services.FastService
}

func NewFastController(fs *services.FastService) *FastController {
	return &FastController{Fasts: fs}
}

type startFastInput struct {
	ScheduleType string  `json:"schedule_type" binding:"required,notblank"`
	FastingHours float64 `json:"fasting_hours" binding:"required,gt=0,lte=72"`
}

func (fc *FastController) Start(c *gin.Context) {
	uid := c.GetUint("userID")

	var input startFastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fast, err := fc.Fasts.StartFast(c.Request.Context(), uid, input.ScheduleType, input.FastingHours)
	if errors.Is(err, services.ErrActiveFastExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fast)
}

func (fc *FastController) Active(c *gin.Context) {
	uid := c.GetUint("userID")

	fast, err := fc.Fasts.GetActiveFast(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if fast == nil {
		c.JSON(http.StatusOK, gin.H{"active": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active": fast,
		"timer":  services.Derive(fast, time.Now()),
	})
}

type adjustStartInput struct {
	StartedAt time.Time `json:"started_at" binding:"required"`
}

func (fc *FastController) AdjustStartTime(c *gin.Context) {
	uid := c.GetUint("userID")
	fastID, ok := idParam(c)
	if !ok {
		return
	}

	var input adjustStartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "started_at must be a valid timestamp"})
		return
	}

	fast, err := fc.Fasts.AdjustStartTime(c.Request.Context(), uid, fastID, input.StartedAt)
	if err != nil {
		respondFastError(c, err)
		return
	}
	c.JSON(http.StatusOK, fast)
}

type endFastInput struct {
	Notes string `json:"notes"`
}

func (fc *FastController) End(c *gin.Context) {
	uid := c.GetUint("userID")
	fastID, ok := idParam(c)
	if !ok {
		return
	}

	var input endFastInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fast, err := fc.Fasts.EndFast(c.Request.Context(), uid, fastID, input.Notes)
	if err != nil {
		respondFastError(c, err)
		return
	}
	c.JSON(http.StatusOK, fast)
}

func (fc *FastController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	fasts, err := fc.Fasts.ListFasts(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fasts)
}

func (fc *FastController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	fastID, ok := idParam(c)
	if !ok {
		return
	}

	if err := fc.Fasts.DeleteFast(c.Request.Context(), uid, fastID); err != nil {
		respondFastError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondFastError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "fast not found"})
	case errors.Is(err, services.ErrNoActiveFast):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/services"
	"github.com/BugHunter-Coder/fasting-friend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

func (h *StatsController) Dashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := h.Svc.Dashboard(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) Insights(c *gin.Context) {
	uid := c.GetUint("userID")

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || (days != 7 && days != 30) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be 7 or 30"})
		return
	}

	out, err := h.Svc.Insights(c.Request.Context(), uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) DailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, utils.DailyQuote(time.Now()))
}

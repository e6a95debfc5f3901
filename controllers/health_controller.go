package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Sync *services.HealthSyncService
}

func NewHealthController(hs *services.HealthSyncService) *HealthController {
	return &HealthController{Sync: hs}
}

func (hc *HealthController) ConnectHealthKit(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := hc.Sync.ConnectHealthKit(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Apple Health connected"})
}

func (hc *HealthController) DisconnectHealthKit(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := hc.Sync.DisconnectHealthKit(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Apple Health disconnected"})
}

// SyncHealthKit accepts whatever kinds the native bridge managed to read.
func (hc *HealthController) SyncHealthKit(c *gin.Context) {
	uid := c.GetUint("userID")

	var payload services.HealthKitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := hc.Sync.SyncHealthKit(c.Request.Context(), uid, payload)
	if err != nil {
		respondSyncError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (hc *HealthController) ConnectGoogleFit(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := hc.Sync.ConnectGoogleFit(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Fit linked"})
}

func (hc *HealthController) DisconnectGoogleFit(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := hc.Sync.DisconnectGoogleFit(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Google Fit unlinked"})
}

func (hc *HealthController) SyncGoogleFit(c *gin.Context) {
	uid := c.GetUint("userID")

	result, err := hc.Sync.SyncGoogleFit(c.Request.Context(), uid)
	if err != nil {
		respondSyncError(c, err)
		return
	}

	message := "Google Fit synced"
	if result.Simulated {
		message = "Synced (demo mode): Google Fit API not configured, simulated data written"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       message,
		"steps":         result.Steps,
		"active_energy": result.ActiveEnergy,
		"simulated":     result.Simulated,
		"source":        result.Source,
	})
}

func (hc *HealthController) ListSnapshots(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	snaps, err := hc.Sync.ListSnapshots(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snaps)
}

func respondSyncError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrIntegrationNotConnected) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

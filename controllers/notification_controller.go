package controllers

import (
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/config"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"

	"github.com/gin-gonic/gin"
)

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle
// Enables or disables push delivery across all of the user's devices.
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /user/alerts
// Recent alert history (fired reminders, scheduler warnings).
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

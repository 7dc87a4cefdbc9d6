package controllers

import (
	"errors"
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type HealthLogController struct {
	Tracker *services.TrackerService
}

func NewHealthLogController(t *services.TrackerService) *HealthLogController {
	return &HealthLogController{Tracker: t}
}

type healthLogReq struct {
	Date          string  `json:"date"` // YYYY-MM-DD, empty = today
	SleepHours    float64 `json:"sleepHours"`
	WaterIntakeML float64 `json:"waterIntakeML"`
}

// POST /user/health-logs
func (hc *HealthLogController) Record(c *gin.Context) {
	uid := c.GetUint("userID")

	var req healthLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := hc.Tracker.RecordHealthLog(uid, req.Date, req.SleepHours, req.WaterIntakeML); err != nil {
		if errors.Is(err, services.ErrNegativeValue) || errors.Is(err, services.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

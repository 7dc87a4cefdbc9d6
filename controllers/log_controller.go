package controllers

import (
	"errors"
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Logs *services.LogService
}

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{Logs: logs}
}

// GET /user/logs
// Returns the merged daily log (most recent date first) with the derived
// insight cards. Store failures degrade to a partial or empty log, never an
// error response.
func (lc *LogController) GetDailyLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := lc.Logs.FetchMergedLogs(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":     logs,
		"insights": services.BuildHealthInsights(logs),
	})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type StepController struct {
	Tracker *services.TrackerService
}

func NewStepController(t *services.TrackerService) *StepController {
	return &StepController{Tracker: t}
}

type stepSampleReq struct {
	Steps int64 `json:"steps"`
}

// POST /user/steps
// The device's step sampler posts its running total for today; repeated posts
// overwrite the same document.
func (sc *StepController) RecordSteps(c *gin.Context) {
	uid := c.GetUint("userID")

	var req stepSampleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	date, err := sc.Tracker.RecordSteps(uid, req.Steps)
	if err != nil {
		if errors.Is(err, services.ErrNegativeValue) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "steps": req.Steps})
}

// GET /user/steps/today
func (sc *StepController) TodaySteps(c *gin.Context) {
	uid := c.GetUint("userID")

	steps, err := sc.Tracker.TodaySteps(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

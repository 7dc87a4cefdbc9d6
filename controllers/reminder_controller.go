package controllers

import (
	"errors"
	"net/http"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(rs *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: rs}
}

// GET /user/reminders
func (rc *ReminderController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	reminders, err := rc.Reminders.ListReminders(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

type addReminderReq struct {
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	DateTime       string `json:"dateTime"` // models.DueTimeLayout
}

// POST /user/reminders
func (rc *ReminderController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var req addReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	reminder, err := rc.Reminders.AddReminder(uid, req.MedicationName, req.Dosage, req.DateTime)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) || errors.Is(err, services.ErrBadDueTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

type statusReq struct {
	Status models.ReminderStatus `json:"status"` // "Taken" | "Missed"
}

// PUT /user/reminders/:id/status
func (rc *ReminderController) UpdateStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := rc.Reminders.UpdateStatus(uid, id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrReminderNotDue):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

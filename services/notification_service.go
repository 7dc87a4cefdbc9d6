package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"

	"gorm.io/gorm"
)

// Notification channels. Reminders are high-importance and user-visible; the
// step channel carries the ongoing tracking status.
const (
	ChannelReminders = "reminder_channel"
	ChannelSteps     = "step_channel"
)

// NotificationService fans a notification out to the alert log, connected
// websocket clients and registered push endpoints. It implements
// ReminderNotifier for the trigger scheduler.
type NotificationService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewNotificationService(db *gorm.DB, hub *RealtimeHub, push *PushService) *NotificationService {
	return &NotificationService{db: db, hub: hub, push: push}
}

// ReminderDue fires the medication notification for a trigger. The push
// payload carries the id-derived key as its tag, so a duplicate firing for
// the same reminder replaces the visible notification instead of stacking.
func (n *NotificationService) ReminderDue(userID uint, key uint64, medicationName, dosage string) {
	title := "Time to take your medication!"
	message := fmt.Sprintf("It's time to take %s (%s).", medicationName, dosage)
	n.emit(userID, "reminder", ChannelReminders, title, message, map[string]string{
		"channel": ChannelReminders,
		"tag":     strconv.FormatUint(key, 10),
	})
}

// SchedulingWarning tells the user a reminder could not be armed. Non-fatal.
func (n *NotificationService) SchedulingWarning(userID uint, message string) {
	n.emit(userID, "warning", ChannelReminders, "Medication Reminders", message, map[string]string{
		"channel": ChannelReminders,
	})
}

// StepStatus updates the ongoing step-tracking notification. A fixed tag
// keeps it to a single replaceable notification; nothing is written to the
// alert log.
func (n *NotificationService) StepStatus(userID uint, steps int64) {
	if n.hub != nil {
		n.hub.BroadcastAlert(userID, map[string]any{
			"kind":  "steps.updated",
			"steps": steps,
		})
	}
	if n.push != nil {
		n.push.PushToUser(userID, "Tracking your steps",
			fmt.Sprintf("Steps today: %d", steps), map[string]string{
				"channel": ChannelSteps,
				"tag":     "step_tracker",
				"ongoing": "true",
			})
	}
}

func (n *NotificationService) emit(userID uint, typ, channel, title, message string, data map[string]string) {
	a := &models.Alert{
		UserID:    userID,
		Type:      typ,
		Channel:   channel,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if n.db != nil {
		_ = n.db.Create(a).Error
	}
	if n.hub != nil {
		n.hub.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if n.push != nil {
		n.push.PushToUser(userID, title, message, data)
	}
}

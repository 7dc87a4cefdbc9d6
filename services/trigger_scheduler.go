package services

import (
	"log"
	"sync"
	"time"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/utils"
)

// ReminderNotifier receives trigger firings and scheduler warnings.
type ReminderNotifier interface {
	// ReminderDue is called when a reminder's trigger fires. key is the
	// reminder's id-derived notification key: a re-fired trigger for the
	// same reminder carries the same key, so the visible notification is
	// replaced, never stacked.
	ReminderDue(userID uint, key uint64, medicationName, dosage string)
	// SchedulingWarning surfaces a non-fatal scheduling problem to the user.
	SchedulingWarning(userID uint, message string)
}

// TriggerScheduler arms one-shot wall-clock timers for medication reminders.
// Triggers are keyed by utils.TriggerKey(reminder.ID); scheduling an id that
// already has a pending trigger replaces it. Delivery is best effort: the
// process may be stopped or suspended before a timer fires.
type TriggerScheduler struct {
	mu       sync.Mutex
	timers   map[uint64]*time.Timer
	notifier ReminderNotifier

	// exactAlarms mirrors the host capability for wake-capable exact timers.
	// When false, scheduling is skipped and the user is warned instead.
	exactAlarms bool
}

func NewTriggerScheduler(notifier ReminderNotifier, exactAlarms bool) *TriggerScheduler {
	return &TriggerScheduler{
		timers:      make(map[uint64]*time.Timer),
		notifier:    notifier,
		exactAlarms: exactAlarms,
	}
}

// Schedule arms the trigger for a reminder. An unparseable due time is a
// logged no-op. Due times already in the past fire immediately.
func (s *TriggerScheduler) Schedule(r models.MedicationReminder) {
	due, err := time.ParseInLocation(models.DueTimeLayout, r.DueAt, time.Local)
	if err != nil {
		log.Printf("trigger scheduler: unparseable due time %q for reminder %s: %v", r.DueAt, r.ID, err)
		return
	}

	if !s.exactAlarms {
		s.notifier.SchedulingWarning(r.UserID,
			"Cannot schedule exact alarms. Please enable the exact alarm permission in settings.")
		return
	}

	key := utils.TriggerKey(r.ID)
	delay := time.Until(due)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(delay, func() {
		s.fire(key, r)
	})
}

func (s *TriggerScheduler) fire(key uint64, r models.MedicationReminder) {
	s.mu.Lock()
	delete(s.timers, key)
	s.mu.Unlock()

	// Status stays Due until the user marks the reminder; firing only
	// produces the notification.
	s.notifier.ReminderDue(r.UserID, key, r.MedicationName, r.Dosage)
}

// Pending reports the number of armed triggers.
func (s *TriggerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown stops all armed triggers without firing them.
func (s *TriggerScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

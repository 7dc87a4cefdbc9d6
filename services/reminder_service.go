package services

import (
	"errors"
	"strings"
	"time"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"

	"github.com/google/uuid"
)

var (
	ErrMissingFields  = errors.New("medication name, dosage and due time are required")
	ErrBadDueTime     = errors.New("due time must look like \"Aug 28, 2026, 08:30 AM\"")
	ErrInvalidStatus  = errors.New("status must be Taken or Missed")
	ErrReminderNotDue = errors.New("reminder not found or already resolved")
)

// ReminderService manages a user's medication reminders and arms their
// triggers. Validation failures are returned to the caller before anything is
// persisted or scheduled.
type ReminderService struct {
	store ReminderStore
	sched *TriggerScheduler
}

func NewReminderService(store ReminderStore, sched *TriggerScheduler) *ReminderService {
	return &ReminderService{store: store, sched: sched}
}

func (s *ReminderService) ListReminders(userID uint) ([]models.MedicationReminder, error) {
	return s.store.ListReminders(userID)
}

// AddReminder creates a Due reminder and arms its trigger. All three fields
// must be non-blank and dueAt must parse under models.DueTimeLayout.
func (s *ReminderService) AddReminder(userID uint, name, dosage, dueAt string) (*models.MedicationReminder, error) {
	name = strings.TrimSpace(name)
	dosage = strings.TrimSpace(dosage)
	dueAt = strings.TrimSpace(dueAt)
	if name == "" || dosage == "" || dueAt == "" {
		return nil, ErrMissingFields
	}
	if _, err := time.ParseInLocation(models.DueTimeLayout, dueAt, time.Local); err != nil {
		return nil, ErrBadDueTime
	}

	r := &models.MedicationReminder{
		ID:             uuid.NewString(),
		UserID:         userID,
		MedicationName: name,
		Dosage:         dosage,
		DueAt:          dueAt,
		Status:         models.StatusDue,
	}
	if err := s.store.CreateReminder(r); err != nil {
		return nil, err
	}

	s.sched.Schedule(*r)
	return r, nil
}

// UpdateStatus resolves a Due reminder to Taken or Missed. Taken and Missed
// are terminal: resolving an already-resolved reminder fails with
// ErrReminderNotDue. The pending trigger, if any, is left armed.
func (s *ReminderService) UpdateStatus(userID uint, id string, status models.ReminderStatus) error {
	if status != models.StatusTaken && status != models.StatusMissed {
		return ErrInvalidStatus
	}

	ok, err := s.store.ResolveReminder(userID, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReminderNotDue
	}
	return nil
}

// RestorePending re-arms triggers for every unresolved reminder. Called once
// on boot; trigger keys are id-derived, so re-arming is idempotent.
func (s *ReminderService) RestorePending() error {
	reminders, err := s.store.ListDueReminders()
	if err != nil {
		return err
	}
	for _, r := range reminders {
		s.sched.Schedule(r)
	}
	return nil
}

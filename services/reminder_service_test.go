package services_test

import (
	"errors"
	"testing"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"
)

// In-memory ReminderStore mirroring the guarded-update semantics of the gorm
// implementation.
type memReminderStore struct {
	reminders map[string]*models.MedicationReminder
}

func newMemReminderStore() *memReminderStore {
	return &memReminderStore{reminders: make(map[string]*models.MedicationReminder)}
}

func (m *memReminderStore) ListReminders(userID uint) ([]models.MedicationReminder, error) {
	var out []models.MedicationReminder
	for _, r := range m.reminders {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReminderStore) ListDueReminders() ([]models.MedicationReminder, error) {
	var out []models.MedicationReminder
	for _, r := range m.reminders {
		if r.Status == models.StatusDue {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReminderStore) CreateReminder(r *models.MedicationReminder) error {
	cp := *r
	m.reminders[r.ID] = &cp
	return nil
}

func (m *memReminderStore) ResolveReminder(userID uint, id string, status models.ReminderStatus) (bool, error) {
	r, ok := m.reminders[id]
	if !ok || r.UserID != userID || r.Status != models.StatusDue {
		return false, nil
	}
	r.Status = status
	return true, nil
}

func newReminderService(t *testing.T) (*services.ReminderService, *memReminderStore, *services.TriggerScheduler) {
	t.Helper()
	store := newMemReminderStore()
	sched := services.NewTriggerScheduler(newCaptureNotifier(), true)
	t.Cleanup(sched.Shutdown)
	return services.NewReminderService(store, sched), store, sched
}

func TestAddReminder_BlankFieldRejected(t *testing.T) {
	svc, store, sched := newReminderService(t)

	cases := []struct {
		name, dosage, due string
	}{
		{"", "500mg", futureDue()},
		{"Metformin", "", futureDue()},
		{"Metformin", "500mg", ""},
		{"   ", "500mg", futureDue()},
	}
	for _, tc := range cases {
		if _, err := svc.AddReminder(1, tc.name, tc.dosage, tc.due); !errors.Is(err, services.ErrMissingFields) {
			t.Errorf("AddReminder(%q,%q,%q): expected ErrMissingFields, got %v", tc.name, tc.dosage, tc.due, err)
		}
	}

	if len(store.reminders) != 0 {
		t.Errorf("rejected input must not be persisted, found %d reminders", len(store.reminders))
	}
	if sched.Pending() != 0 {
		t.Errorf("rejected input must not arm a trigger, %d pending", sched.Pending())
	}
}

func TestAddReminder_BadDueTimeRejected(t *testing.T) {
	svc, store, sched := newReminderService(t)

	if _, err := svc.AddReminder(1, "Metformin", "500mg", "2024-01-01 08:00"); !errors.Is(err, services.ErrBadDueTime) {
		t.Fatalf("expected ErrBadDueTime, got %v", err)
	}
	if len(store.reminders) != 0 || sched.Pending() != 0 {
		t.Error("rejected input must neither persist nor schedule")
	}
}

func TestAddReminder_CreatesDueReminderAndArmsTrigger(t *testing.T) {
	svc, store, sched := newReminderService(t)

	r, err := svc.AddReminder(1, "Metformin", "500mg", futureDue())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID == "" {
		t.Error("expected a generated id")
	}
	if r.Status != models.StatusDue {
		t.Errorf("new reminder must start Due, got %s", r.Status)
	}
	if _, ok := store.reminders[r.ID]; !ok {
		t.Error("reminder not persisted")
	}
	if sched.Pending() != 1 {
		t.Errorf("expected 1 armed trigger, got %d", sched.Pending())
	}
}

func TestUpdateStatus_RejectsInvalidTarget(t *testing.T) {
	svc, _, _ := newReminderService(t)

	for _, status := range []models.ReminderStatus{models.StatusDue, "Snoozed", ""} {
		if err := svc.UpdateStatus(1, "whatever", status); !errors.Is(err, services.ErrInvalidStatus) {
			t.Errorf("UpdateStatus(%q): expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestUpdateStatus_TerminalStatesStay(t *testing.T) {
	svc, store, _ := newReminderService(t)

	r, err := svc.AddReminder(1, "Metformin", "500mg", futureDue())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(1, r.ID, models.StatusTaken); err != nil {
		t.Fatalf("Due -> Taken must succeed, got %v", err)
	}
	if got := store.reminders[r.ID].Status; got != models.StatusTaken {
		t.Fatalf("expected Taken, got %s", got)
	}

	if err := svc.UpdateStatus(1, r.ID, models.StatusMissed); !errors.Is(err, services.ErrReminderNotDue) {
		t.Fatalf("Taken -> Missed must be rejected, got %v", err)
	}
	if got := store.reminders[r.ID].Status; got != models.StatusTaken {
		t.Errorf("terminal status overwritten to %s", got)
	}
}

func TestUpdateStatus_UnknownReminder(t *testing.T) {
	svc, _, _ := newReminderService(t)

	if err := svc.UpdateStatus(1, "missing-id", models.StatusMissed); !errors.Is(err, services.ErrReminderNotDue) {
		t.Fatalf("expected ErrReminderNotDue, got %v", err)
	}
}

func TestUpdateStatus_OtherUsersReminder(t *testing.T) {
	svc, store, _ := newReminderService(t)

	r, err := svc.AddReminder(1, "Metformin", "500mg", futureDue())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(2, r.ID, models.StatusTaken); !errors.Is(err, services.ErrReminderNotDue) {
		t.Fatalf("cross-user update must be rejected, got %v", err)
	}
	if got := store.reminders[r.ID].Status; got != models.StatusDue {
		t.Errorf("cross-user update mutated status to %s", got)
	}
}

func TestRestorePending_ReArmsDueRemindersOnly(t *testing.T) {
	svc, store, sched := newReminderService(t)

	for _, r := range []*models.MedicationReminder{
		{ID: "due-1", UserID: 1, MedicationName: "A", Dosage: "1", DueAt: futureDue(), Status: models.StatusDue},
		{ID: "due-2", UserID: 2, MedicationName: "B", Dosage: "2", DueAt: futureDue(), Status: models.StatusDue},
		{ID: "done-1", UserID: 1, MedicationName: "C", Dosage: "3", DueAt: futureDue(), Status: models.StatusTaken},
	} {
		store.reminders[r.ID] = r
	}

	if err := svc.RestorePending(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sched.Pending(); got != 2 {
		t.Fatalf("expected 2 re-armed triggers, got %d", got)
	}
}

package services

import (
	"context"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"

	"gorm.io/gorm"
)

// StepStore lists a user's per-date step documents, most recent date first.
type StepStore interface {
	ListDailySteps(ctx context.Context, userID uint) ([]models.DailyStepDoc, error)
}

// HealthLogStore reads a user's sleep/water log subtree in one query.
type HealthLogStore interface {
	GetHealthLogs(ctx context.Context, userID uint) ([]models.HealthLog, error)
}

// ReminderStore owns the per-user reminder collection.
type ReminderStore interface {
	ListReminders(userID uint) ([]models.MedicationReminder, error)
	ListDueReminders() ([]models.MedicationReminder, error)
	CreateReminder(r *models.MedicationReminder) error
	// ResolveReminder sets a Due reminder's status in place. Returns false
	// when the reminder does not exist, belongs to another user, or has
	// already left the Due state.
	ResolveReminder(userID uint, id string, status models.ReminderStatus) (bool, error)
}

type GormStepStore struct {
	db *gorm.DB
}

func NewGormStepStore(db *gorm.DB) *GormStepStore {
	return &GormStepStore{db: db}
}

func (s *GormStepStore) ListDailySteps(ctx context.Context, userID uint) ([]models.DailyStepDoc, error) {
	var docs []models.DailyStepDoc
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&docs).Error
	return docs, err
}

// UpsertDailySteps writes the sampler's running total for a date. Keyed by
// (user_id, date) so repeated samples for the same day overwrite.
func (s *GormStepStore) UpsertDailySteps(userID uint, date string, steps int64, timestampMs int64) error {
	doc := models.DailyStepDoc{
		UserID:    userID,
		Date:      date,
		Steps:     steps,
		Timestamp: timestampMs,
	}
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(doc).
		FirstOrCreate(&doc).Error
}

func (s *GormStepStore) GetDailySteps(ctx context.Context, userID uint, date string) (int64, error) {
	var doc models.DailyStepDoc
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return doc.Steps, nil
}

type GormHealthLogStore struct {
	db *gorm.DB
}

func NewGormHealthLogStore(db *gorm.DB) *GormHealthLogStore {
	return &GormHealthLogStore{db: db}
}

func (s *GormHealthLogStore) GetHealthLogs(ctx context.Context, userID uint) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&logs).Error
	return logs, err
}

// UpsertHealthLog records a date's sleep and water sample.
func (s *GormHealthLogStore) UpsertHealthLog(userID uint, date string, sleepHours, waterIntakeML float64) error {
	entry := models.HealthLog{
		UserID:        userID,
		Date:          date,
		SleepHours:    sleepHours,
		WaterIntakeML: waterIntakeML,
	}
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(entry).
		FirstOrCreate(&entry).Error
}

type GormReminderStore struct {
	db *gorm.DB
}

func NewGormReminderStore(db *gorm.DB) *GormReminderStore {
	return &GormReminderStore{db: db}
}

func (s *GormReminderStore) ListReminders(userID uint) ([]models.MedicationReminder, error) {
	var reminders []models.MedicationReminder
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reminders).Error
	return reminders, err
}

// ListDueReminders returns every user's unresolved reminders; used on boot to
// re-arm triggers.
func (s *GormReminderStore) ListDueReminders() ([]models.MedicationReminder, error) {
	var reminders []models.MedicationReminder
	err := s.db.
		Where("status = ?", models.StatusDue).
		Find(&reminders).Error
	return reminders, err
}

func (s *GormReminderStore) CreateReminder(r *models.MedicationReminder) error {
	return s.db.Create(r).Error
}

// ResolveReminder is a single guarded UPDATE: the status column changes only
// while it is still Due, so a terminal status is never overwritten and
// concurrent writers cannot lose the update.
func (s *GormReminderStore) ResolveReminder(userID uint, id string, status models.ReminderStatus) (bool, error) {
	res := s.db.Model(&models.MedicationReminder{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.StatusDue).
		Update("status", status)
	return res.RowsAffected == 1, res.Error
}

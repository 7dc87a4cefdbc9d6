package services

import (
	"context"
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrNegativeValue = errors.New("values must be non-negative")
	ErrBadDate       = errors.New("date must look like 2006-01-02")
)

// TrackerService is the write path for the two metric stores: the device's
// step sampler posts running totals, the hydration/sleep screen posts
// samples. The log aggregator reads what this writes.
type TrackerService struct {
	steps  *GormStepStore
	health *GormHealthLogStore
	notify *NotificationService
}

func NewTrackerService(steps *GormStepStore, health *GormHealthLogStore, notify *NotificationService) *TrackerService {
	return &TrackerService{steps: steps, health: health, notify: notify}
}

// RecordSteps upserts today's step document and refreshes the ongoing
// step-tracking notification.
func (t *TrackerService) RecordSteps(userID uint, steps int64) (string, error) {
	if steps < 0 {
		return "", ErrNegativeValue
	}
	now := time.Now()
	date := now.Format(dateLayout)
	if err := t.steps.UpsertDailySteps(userID, date, steps, now.UnixMilli()); err != nil {
		return "", err
	}
	if t.notify != nil {
		t.notify.StepStatus(userID, steps)
	}
	return date, nil
}

func (t *TrackerService) TodaySteps(ctx context.Context, userID uint) (int64, error) {
	return t.steps.GetDailySteps(ctx, userID, time.Now().Format(dateLayout))
}

// RecordHealthLog upserts a date's sleep/water sample. An empty date means
// today.
func (t *TrackerService) RecordHealthLog(userID uint, date string, sleepHours, waterIntakeML float64) error {
	if sleepHours < 0 || waterIntakeML < 0 {
		return ErrNegativeValue
	}
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrBadDate
	}
	return t.health.UpsertHealthLog(userID, date, sleepHours, waterIntakeML)
}

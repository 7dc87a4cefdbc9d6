package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
)

// ErrNotAuthenticated is returned when no user identity is available. It is a
// signal, not a hard failure: the result alongside it is always empty.
var ErrNotAuthenticated = errors.New("no authenticated user")

// LogService merges per-date health metrics from the step document store and
// the sleep/water log store into one chronological log.
type LogService struct {
	steps  StepStore
	health HealthLogStore
}

func NewLogService(steps StepStore, health HealthLogStore) *LogService {
	return &LogService{steps: steps, health: health}
}

// FetchMergedLogs builds the merged daily log for a user, most recent date
// first. The two store reads run concurrently and are joined before the merge.
// A store failure is logged and that source contributes nothing; partial data
// from the other source is still returned. Store errors never propagate.
func (s *LogService) FetchMergedLogs(ctx context.Context, userID uint) ([]models.LogEntry, error) {
	if userID == 0 {
		return []models.LogEntry{}, ErrNotAuthenticated
	}

	var (
		wg         sync.WaitGroup
		stepDocs   []models.DailyStepDoc
		healthLogs []models.HealthLog
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		docs, err := s.steps.ListDailySteps(ctx, userID)
		if err != nil {
			log.Printf("log aggregation: step fetch failed for user %d: %v", userID, err)
			return
		}
		stepDocs = docs
	}()
	go func() {
		defer wg.Done()
		logs, err := s.health.GetHealthLogs(ctx, userID)
		if err != nil {
			log.Printf("log aggregation: health log fetch failed for user %d: %v", userID, err)
			return
		}
		healthLogs = logs
	}()
	wg.Wait()

	stepsByDate := make(map[string]int64, len(stepDocs))
	for _, d := range stepDocs {
		stepsByDate[d.Date] = d.Steps
	}
	sleepByDate := make(map[string]float64, len(healthLogs))
	waterByDate := make(map[string]float64, len(healthLogs))
	for _, h := range healthLogs {
		sleepByDate[h.Date] = h.SleepHours
		waterByDate[h.Date] = h.WaterIntakeML
	}

	// Union of dates seen in either source; missing metrics stay zero.
	dates := make(map[string]struct{}, len(stepsByDate)+len(sleepByDate))
	for d := range stepsByDate {
		dates[d] = struct{}{}
	}
	for d := range sleepByDate {
		dates[d] = struct{}{}
	}

	entries := make([]models.LogEntry, 0, len(dates))
	for d := range dates {
		entries = append(entries, models.LogEntry{
			Date:       d,
			Steps:      stepsByDate[d],
			SleepHours: sleepByDate[d],
			WaterMl:    waterByDate[d],
		})
	}

	// Lexicographic descending on YYYY-MM-DD is chronological descending.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

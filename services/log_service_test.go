package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"
)

type mockStepStore struct {
	docs []models.DailyStepDoc
	err  error
}

func (m *mockStepStore) ListDailySteps(ctx context.Context, userID uint) ([]models.DailyStepDoc, error) {
	return m.docs, m.err
}

type mockHealthStore struct {
	logs []models.HealthLog
	err  error
}

func (m *mockHealthStore) GetHealthLogs(ctx context.Context, userID uint) ([]models.HealthLog, error) {
	return m.logs, m.err
}

func TestFetchMergedLogs_MergeAndZeroFill(t *testing.T) {
	steps := &mockStepStore{docs: []models.DailyStepDoc{
		{UserID: 1, Date: "2024-01-02", Steps: 500},
	}}
	health := &mockHealthStore{logs: []models.HealthLog{
		{UserID: 1, Date: "2024-01-01", SleepHours: 7, WaterIntakeML: 1500},
	}}

	logs, err := services.NewLogService(steps, health).FetchMergedLogs(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(logs))
	}

	want := []models.LogEntry{
		{Date: "2024-01-02", Steps: 500, SleepHours: 0, WaterMl: 0},
		{Date: "2024-01-01", Steps: 0, SleepHours: 7, WaterMl: 1500},
	}
	for i, w := range want {
		if logs[i] != w {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, logs[i])
		}
	}
}

func TestFetchMergedLogs_SortsDescending(t *testing.T) {
	steps := &mockStepStore{docs: []models.DailyStepDoc{
		{UserID: 1, Date: "2024-02-10", Steps: 1},
		{UserID: 1, Date: "2023-12-31", Steps: 2},
	}}
	health := &mockHealthStore{logs: []models.HealthLog{
		{UserID: 1, Date: "2024-01-15", SleepHours: 8},
		{UserID: 1, Date: "2024-03-01", SleepHours: 6},
	}}

	logs, err := services.NewLogService(steps, health).FetchMergedLogs(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(logs); i++ {
		if logs[i-1].Date <= logs[i].Date {
			t.Fatalf("not sorted descending at %d: %s before %s", i, logs[i-1].Date, logs[i].Date)
		}
	}
}

func TestFetchMergedLogs_DateInBothSources(t *testing.T) {
	steps := &mockStepStore{docs: []models.DailyStepDoc{
		{UserID: 1, Date: "2024-01-01", Steps: 9000},
	}}
	health := &mockHealthStore{logs: []models.HealthLog{
		{UserID: 1, Date: "2024-01-01", SleepHours: 7.5, WaterIntakeML: 2000},
	}}

	logs, err := services.NewLogService(steps, health).FetchMergedLogs(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected a single merged entry, got %d", len(logs))
	}
	want := models.LogEntry{Date: "2024-01-01", Steps: 9000, SleepHours: 7.5, WaterMl: 2000}
	if logs[0] != want {
		t.Errorf("expected %+v, got %+v", want, logs[0])
	}
}

func TestFetchMergedLogs_NotAuthenticated(t *testing.T) {
	svc := services.NewLogService(&mockStepStore{}, &mockHealthStore{})

	logs, err := svc.FetchMergedLogs(context.Background(), 0)
	if !errors.Is(err, services.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty result, got %d entries", len(logs))
	}
}

func TestFetchMergedLogs_FailSoftOnHealthStore(t *testing.T) {
	steps := &mockStepStore{docs: []models.DailyStepDoc{
		{UserID: 1, Date: "2024-03-01", Steps: 1000},
	}}
	health := &mockHealthStore{err: errors.New("store unavailable")}

	logs, err := services.NewLogService(steps, health).FetchMergedLogs(context.Background(), 1)
	if err != nil {
		t.Fatalf("store failure must not propagate, got %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected partial result with 1 entry, got %d", len(logs))
	}
	want := models.LogEntry{Date: "2024-03-01", Steps: 1000}
	if logs[0] != want {
		t.Errorf("expected %+v, got %+v", want, logs[0])
	}
}

func TestFetchMergedLogs_BothStoresFail(t *testing.T) {
	steps := &mockStepStore{err: errors.New("down")}
	health := &mockHealthStore{err: errors.New("down")}

	logs, err := services.NewLogService(steps, health).FetchMergedLogs(context.Background(), 1)
	if err != nil {
		t.Fatalf("store failure must not propagate, got %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty result, got %d entries", len(logs))
	}
}

func TestBuildHealthInsights_Empty(t *testing.T) {
	insights := services.BuildHealthInsights(nil)
	if len(insights) != 0 {
		t.Fatalf("expected no insights for empty log, got %d", len(insights))
	}
}

func TestBuildHealthInsights_LatestEntryOnly(t *testing.T) {
	logs := []models.LogEntry{
		{Date: "2024-01-02", Steps: 500, SleepHours: 6.5, WaterMl: 1500},
		{Date: "2024-01-01", Steps: 9999, SleepHours: 9, WaterMl: 3000},
	}

	insights := services.BuildHealthInsights(logs)
	if len(insights) != 3 {
		t.Fatalf("expected exactly 3 insights, got %d", len(insights))
	}

	if insights[0].Title != "Steps Walked" || insights[0].Value != "500" {
		t.Errorf("steps insight: got %+v", insights[0])
	}
	if insights[1].Title != "Sleep Duration" || insights[1].Value != "6.5 hrs" {
		t.Errorf("sleep insight: got %+v", insights[1])
	}
	if insights[2].Title != "Water Intake" || insights[2].Value != "1.5 L" {
		t.Errorf("water insight: got %+v", insights[2])
	}
}

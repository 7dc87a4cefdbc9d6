package services

import (
	"fmt"
	"strconv"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/models"
)

// BuildHealthInsights summarizes the latest entry of an already-sorted log
// (most recent first) into three display cards. Empty input yields no
// insights.
func BuildHealthInsights(logs []models.LogEntry) []models.HealthInsight {
	if len(logs) == 0 {
		return []models.HealthInsight{}
	}

	latest := logs[0]

	return []models.HealthInsight{
		{
			Title:       "Steps Walked",
			Value:       strconv.FormatInt(latest.Steps, 10),
			Description: "Steps recorded for the latest day",
		},
		{
			Title:       "Sleep Duration",
			Value:       fmt.Sprintf("%.1f hrs", latest.SleepHours),
			Description: "Sleep duration from last night",
		},
		{
			Title:       "Water Intake",
			Value:       fmt.Sprintf("%.1f L", latest.WaterMl/1000),
			Description: "Water consumed",
		},
	}
}

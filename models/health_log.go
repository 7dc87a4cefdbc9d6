package models

import (
	"gorm.io/gorm"
)

// HealthLog holds a date's sleep and water sample for one user. Either field
// may be left at zero when the user logged only one of the two.
type HealthLog struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex:idx_health_user_date;not null"`
	Date          string `gorm:"size:10;uniqueIndex:idx_health_user_date;not null"` // YYYY-MM-DD
	SleepHours    float64
	WaterIntakeML float64
}

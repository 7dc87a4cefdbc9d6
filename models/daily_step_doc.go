package models

import (
	"gorm.io/gorm"
)

// DailyStepDoc is one per-user per-date step document. The step sampler on the
// device upserts today's document; the log aggregator only reads.
type DailyStepDoc struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex:idx_steps_user_date;not null"`
	Date      string `gorm:"size:10;uniqueIndex:idx_steps_user_date;not null"` // YYYY-MM-DD
	Steps     int64
	Timestamp int64 // ms since epoch, set by the sampler on upsert
}

package models

import "time"

// DueTimeLayout is the display format reminders are entered and stored in,
// e.g. "Aug 28, 2026, 08:30 AM".
const DueTimeLayout = "Jan 02, 2006, 03:04 PM"

type ReminderStatus string

const (
	StatusDue    ReminderStatus = "Due"
	StatusTaken  ReminderStatus = "Taken"
	StatusMissed ReminderStatus = "Missed"
)

// MedicationReminder is a scheduled medication event. The id doubles as the
// document key and as the seed for the trigger's de-duplication key, so
// re-scheduling the same reminder replaces its pending trigger.
type MedicationReminder struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	UserID         uint           `gorm:"index" json:"-"`
	MedicationName string         `gorm:"not null" json:"medicationName"`
	Dosage         string         `json:"dosage"`
	DueAt          string         `gorm:"size:32" json:"dateTime"` // DueTimeLayout
	Status         ReminderStatus `gorm:"size:10" json:"status"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
}

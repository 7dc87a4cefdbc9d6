package models

// LogEntry is one calendar day's merged health record, built fresh on every
// aggregation request. It is never persisted; the step and health-log stores
// own the underlying data.
type LogEntry struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Steps      int64   `json:"steps"`
	SleepHours float64 `json:"sleepHours"`
	WaterMl    float64 `json:"waterMl"`
}

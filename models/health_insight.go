package models

// HealthInsight is a display-ready summary derived from the latest log entry.
type HealthInsight struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Type      string    `gorm:"size:20" json:"type"`    // "reminder" | "warning" | "info"
	Channel   string    `gorm:"size:32" json:"channel"` // notification channel the alert was delivered on
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// QuickNoteKey is the settings key used for the per-user scratchpad.
const QuickNoteKey = "quickNote"

// Setting is a per-user key/value row. Exactly one row exists per (user, key)
// pair; writes are upserts.
type Setting struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"default:''" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

package models

import (
	"encoding/json"
	"time"
)

// PushSubscription holds the Web Push descriptor a browser's push agent hands
// us on subscribe. Keyed by user: re-subscribing replaces the prior descriptor,
// and the row is deleted once the push service reports the endpoint gone.
type PushSubscription struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Endpoint  string    `gorm:"not null" json:"endpoint"`
	P256dh    string    `gorm:"not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (p *PushSubscription) FromJSON(data []byte) error {
	return json.Unmarshal(data, p)
}

func (p *PushSubscription) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

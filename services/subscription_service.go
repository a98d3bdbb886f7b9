package services

import (
	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/models"

	"gorm.io/gorm/clause"
)

// SubscriptionInput is the push descriptor a browser hands over on subscribe,
// in the standard PushSubscription JSON shape.
type SubscriptionInput struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

type SubscriptionServiceInterface interface {
	SaveSubscription(db *database.Database, userID string, input SubscriptionInput) error
	DeleteSubscription(db *database.Database, userID string) error
}

type SubscriptionService struct{}

// SaveSubscription upserts the user's descriptor. One subscription per user:
// re-subscribing from another device replaces the previous one.
func (s *SubscriptionService) SaveSubscription(db *database.Database, userID string, input SubscriptionInput) error {
	sub := models.PushSubscription{
		UserID:   userID,
		Endpoint: input.Endpoint,
		P256dh:   input.Keys.P256dh,
		Auth:     input.Keys.Auth,
	}
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"endpoint", "p256dh", "auth", "updated_at"}),
	}).Create(&sub).Error
}

// DeleteSubscription is idempotent; removing an absent row is not an error.
func (s *SubscriptionService) DeleteSubscription(db *database.Database, userID string) error {
	return db.DB.Where("user_id = ?", userID).Delete(&models.PushSubscription{}).Error
}

// NewSubscriptionService creates a new instance of SubscriptionService
func NewSubscriptionService() SubscriptionServiceInterface {
	return &SubscriptionService{}
}

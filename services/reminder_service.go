package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/models"
	"apuntes-app/apuntes/push"
)

// Lead times before a note's due timestamp at which a reminder fires. Each is
// matched inside a ±1 minute band so a 60 second poll interval catches a note
// in a single cycle per lead time.
var reminderLeadTimes = []time.Duration{
	4 * time.Hour,
	24 * time.Hour,
	48 * time.Hour,
}

const reminderWindow = time.Minute

type ReminderServiceInterface interface {
	Start()
	Stop()
	RunCycle(ctx context.Context, now time.Time)
}

// ReminderService periodically scans for notes approaching their due time and
// pushes a reminder to the owner's subscribed device.
type ReminderService struct {
	db            *database.Database
	deliverer     push.DelivererInterface
	subscriptions SubscriptionServiceInterface
	interval      time.Duration
	stop          chan struct{}
	done          chan struct{}
	stopOnce      sync.Once
}

func NewReminderService(db *database.Database, deliverer push.DelivererInterface, subscriptions SubscriptionServiceInterface, interval time.Duration) *ReminderService {
	return &ReminderService{
		db:            db,
		deliverer:     deliverer,
		subscriptions: subscriptions,
		interval:      interval,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

func (s *ReminderService) Start() {
	go s.run()
	log.Printf("Reminder scheduler started, polling every %s", s.interval)
}

func (s *ReminderService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// run executes cycles on a single goroutine, so two cycles can never race on
// the subscription-deletion path.
func (s *ReminderService) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.RunCycle(context.Background(), time.Now())
		}
	}
}

type reminderMatch struct {
	NoteID   string `gorm:"column:note_id"`
	Title    string `gorm:"column:title"`
	UserID   string `gorm:"column:user_id"`
	Endpoint string `gorm:"column:endpoint"`
	P256dh   string `gorm:"column:p256dh"`
	Auth     string `gorm:"column:auth"`
}

type reminderPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// RunCycle performs one scan-and-notify pass. Every failure is isolated: a
// query error skips the cycle, a delivery error skips that note, and only a
// terminal delivery failure mutates state (dropping the dead subscription).
func (s *ReminderService) RunCycle(ctx context.Context, now time.Time) {
	matches, err := s.dueReminders(now)
	if err != nil {
		log.Printf("Reminder query failed, skipping cycle: %v", err)
		return
	}

	for _, m := range matches {
		payload, err := json.Marshal(buildReminderPayload(m.Title))
		if err != nil {
			log.Printf("Failed to encode reminder payload for note %s: %v", m.NoteID, err)
			continue
		}

		sub := models.PushSubscription{
			UserID:   m.UserID,
			Endpoint: m.Endpoint,
			P256dh:   m.P256dh,
			Auth:     m.Auth,
		}

		err = s.deliverer.Send(ctx, sub, payload)
		switch {
		case errors.Is(err, push.ErrSubscriptionGone):
			log.Printf("Subscription for user %s is gone, removing it", m.UserID)
			if derr := s.subscriptions.DeleteSubscription(s.db, m.UserID); derr != nil {
				log.Printf("Failed to remove dead subscription for user %s: %v", m.UserID, derr)
			}
		case err != nil:
			log.Printf("Reminder delivery failed for note %s: %v", m.NoteID, err)
		}
	}
}

// dueReminders joins notes to subscriptions and keeps rows whose due time
// falls inside one of the lead-time windows measured from now.
func (s *ReminderService) dueReminders(now time.Time) ([]reminderMatch, error) {
	windows := s.db.DB.Where(
		"notes.due_at BETWEEN ? AND ?",
		now.Add(reminderLeadTimes[0]-reminderWindow),
		now.Add(reminderLeadTimes[0]+reminderWindow),
	)
	for _, lead := range reminderLeadTimes[1:] {
		windows = windows.Or(
			"notes.due_at BETWEEN ? AND ?",
			now.Add(lead-reminderWindow),
			now.Add(lead+reminderWindow),
		)
	}

	var matches []reminderMatch
	err := s.db.DB.Table("notes").
		Select("notes.id AS note_id, notes.title, notes.user_id, push_subscriptions.endpoint, push_subscriptions.p256dh, push_subscriptions.auth").
		Joins("JOIN push_subscriptions ON push_subscriptions.user_id = notes.user_id").
		Where("notes.reminders_enabled = ?", true).
		Where("notes.due_at IS NOT NULL").
		Where(windows).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func buildReminderPayload(title string) reminderPayload {
	name := title
	if name == "" {
		name = "sin título"
	}
	return reminderPayload{
		Title: "Recordatorio de Nota",
		Body:  fmt.Sprintf("Tu nota \"%s\" está próxima a vencer.", name),
	}
}

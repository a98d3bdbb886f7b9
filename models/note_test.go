package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteJSONFieldNames(t *testing.T) {
	due := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	note := Note{
		ID:               uuid.New(),
		UserID:           "user-1",
		Title:            "Examen",
		DueAt:            &due,
		RemindersEnabled: true,
	}

	data, err := note.ToJSON()
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	// The reminders flag keeps its wire name for client compatibility.
	assert.Contains(t, fields, "notificaciones_activas")
	assert.Equal(t, true, fields["notificaciones_activas"])
	assert.Contains(t, fields, "is_archived")
	assert.Contains(t, fields, "attachment_url")
	assert.Contains(t, fields, "attachment_filename")
	assert.NotContains(t, fields, "reminders_enabled")
}

func TestNoteFromJSON(t *testing.T) {
	var note Note
	err := note.FromJSON([]byte(`{"title":"Tarea","notificaciones_activas":true,"pinned":true}`))
	assert.NoError(t, err)
	assert.Equal(t, "Tarea", note.Title)
	assert.True(t, note.RemindersEnabled)
	assert.True(t, note.Pinned)
}

func TestPushSubscriptionRoundTrip(t *testing.T) {
	sub := PushSubscription{
		UserID:   "user-1",
		Endpoint: "https://push.example/abc",
		P256dh:   "pk",
		Auth:     "secret",
	}

	data, err := sub.ToJSON()
	assert.NoError(t, err)

	var decoded PushSubscription
	assert.NoError(t, decoded.FromJSON(data))
	assert.Equal(t, sub, decoded)
}

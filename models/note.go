package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultColor    = "#f1e363ff"
	DefaultCategory = "Clase"
)

type Note struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string     `gorm:"not null;index" json:"user_id"`
	Title              string     `gorm:"default:''" json:"title"`
	Body               string     `gorm:"default:''" json:"body"`
	DueAt              *time.Time `json:"due_at"`
	Color              string     `gorm:"default:'#f1e363ff'" json:"color"`
	Category           string     `gorm:"default:'Clase'" json:"category"`
	Pinned             bool       `gorm:"default:false" json:"pinned"`
	IsArchived         bool       `gorm:"default:false;index" json:"is_archived"`
	RemindersEnabled   bool       `gorm:"default:false" json:"notificaciones_activas"`
	AttachmentURL      string     `gorm:"default:''" json:"attachment_url"`
	AttachmentFilename string     `gorm:"default:''" json:"attachment_filename"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate assigns the id in application code rather than through a
// database default so the model behaves the same against postgres and the
// in-memory test database.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (n *Note) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Note) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

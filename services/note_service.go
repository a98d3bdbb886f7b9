package services

import (
	"errors"
	"time"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/models"

	"gorm.io/gorm"
)

// NoteInput carries the mutable note fields of a create or update request.
// Nil fields were omitted by the client and take their documented defaults;
// an update is a full replace, so omitted fields reset rather than persist.
type NoteInput struct {
	Title    *string    `json:"title"`
	Body     *string    `json:"body"`
	DueAt    *time.Time `json:"due_at"`
	Color    *string    `json:"color"`
	Category *string    `json:"category"`
	Pinned   *bool      `json:"pinned"`
}

type NoteServiceInterface interface {
	ListNotes(db *database.Database, userID string, archived bool) ([]models.Note, error)
	GetNoteById(db *database.Database, userID, id string) (models.Note, error)
	CreateNote(db *database.Database, userID string, input NoteInput) (models.Note, error)
	UpdateNote(db *database.Database, userID, id string, input NoteInput) (models.Note, error)
	SetArchived(db *database.Database, userID, id string, archived bool) (models.Note, error)
	SetRemindersEnabled(db *database.Database, userID, id string, enabled bool) (models.Note, error)
	SetAttachment(db *database.Database, userID, id, url, filename string) (models.Note, error)
	DeleteNote(db *database.Database, userID, id string) error
}

type NoteService struct{}

// listOrder keeps the UI stable across fetches: soonest due first, undated
// notes last, ties broken by id.
const listOrder = "due_at ASC NULLS LAST, id ASC"

func (s *NoteService) ListNotes(db *database.Database, userID string, archived bool) ([]models.Note, error) {
	notes := []models.Note{}
	err := db.DB.
		Where("user_id = ? AND is_archived = ?", userID, archived).
		Order(listOrder).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) GetNoteById(db *database.Database, userID, id string) (models.Note, error) {
	var note models.Note
	if err := db.DB.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) CreateNote(db *database.Database, userID string, input NoteInput) (models.Note, error) {
	note := models.Note{UserID: userID}
	applyInput(&note, input)

	if err := db.DB.Create(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) UpdateNote(db *database.Database, userID, id string, input NoteInput) (models.Note, error) {
	note, err := s.GetNoteById(db, userID, id)
	if err != nil {
		return models.Note{}, err
	}

	applyInput(&note, input)

	if err := db.DB.Save(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) SetArchived(db *database.Database, userID, id string, archived bool) (models.Note, error) {
	note, err := s.GetNoteById(db, userID, id)
	if err != nil {
		return models.Note{}, err
	}

	note.IsArchived = archived

	if err := db.DB.Save(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) SetRemindersEnabled(db *database.Database, userID, id string, enabled bool) (models.Note, error) {
	note, err := s.GetNoteById(db, userID, id)
	if err != nil {
		return models.Note{}, err
	}

	note.RemindersEnabled = enabled

	if err := db.DB.Save(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) SetAttachment(db *database.Database, userID, id, url, filename string) (models.Note, error) {
	note, err := s.GetNoteById(db, userID, id)
	if err != nil {
		return models.Note{}, err
	}

	note.AttachmentURL = url
	note.AttachmentFilename = filename

	if err := db.DB.Save(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(db *database.Database, userID, id string) error {
	result := db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// applyInput replaces the mutable fields, falling back to the documented
// defaults for anything the client omitted.
func applyInput(note *models.Note, input NoteInput) {
	note.Title = stringOr(input.Title, "")
	note.Body = stringOr(input.Body, "")
	note.DueAt = input.DueAt
	note.Color = stringOr(input.Color, models.DefaultColor)
	note.Category = stringOr(input.Category, models.DefaultCategory)
	note.Pinned = input.Pinned != nil && *input.Pinned
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

// NewNoteService creates a new instance of NoteService
func NewNoteService() NoteServiceInterface {
	return &NoteService{}
}

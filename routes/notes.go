package routes

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/services"
	"apuntes-app/apuntes/storage"

	"github.com/gin-gonic/gin"
)

func RegisterNoteRoutes(group *gin.RouterGroup, db *database.Database, noteService services.NoteServiceInterface, blobStore storage.BlobStoreInterface) {
	group.GET("/notes", func(c *gin.Context) { ListActiveNotes(c, db, noteService) })
	group.GET("/notes/archived", func(c *gin.Context) { ListArchivedNotes(c, db, noteService) })
	group.POST("/notes", func(c *gin.Context) { CreateNote(c, db, noteService) })

	group.PUT("/notes/:id", func(c *gin.Context) { UpdateNote(c, db, noteService) })
	group.PUT("/notes/:id/archive", func(c *gin.Context) { SetArchived(c, db, noteService) })
	group.PUT("/notes/:id/notifications", func(c *gin.Context) { SetReminders(c, db, noteService) })
	group.DELETE("/notes/:id", func(c *gin.Context) { DeleteNote(c, db, noteService) })
	group.POST("/notes/:id/upload", func(c *gin.Context) { UploadAttachment(c, db, noteService, blobStore) })
}

func ListActiveNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	listNotes(c, db, noteService, false)
}

func ListArchivedNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	listNotes(c, db, noteService, true)
}

func listNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface, archived bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := noteService.ListNotes(db, userID, archived)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note payload"})
		return
	}

	createdNote, err := noteService.CreateNote(db, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create note"})
		return
	}
	c.JSON(http.StatusCreated, createdNote)
}

func UpdateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note payload"})
		return
	}

	updatedNote, err := noteService.UpdateNote(db, userID, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note"})
		return
	}
	c.JSON(http.StatusOK, updatedNote)
}

type archiveRequest struct {
	IsArchived *bool `json:"is_archived"`
}

func SetArchived(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsArchived == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "is_archived must be a boolean"})
		return
	}

	note, err := noteService.SetArchived(db, userID, c.Param("id"), *req.IsArchived)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

type remindersRequest struct {
	RemindersEnabled *bool `json:"notificaciones_activas"`
}

func SetReminders(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req remindersRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RemindersEnabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "notificaciones_activas must be a boolean"})
		return
	}

	note, err := noteService.SetRemindersEnabled(db, userID, c.Param("id"), *req.RemindersEnabled)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := noteService.DeleteNote(db, userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete note"})
		return
	}
	c.Status(http.StatusNoContent)
}

func UploadAttachment(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface, blobStore storage.BlobStoreInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A file field is required"})
		return
	}

	// Ownership is checked before touching the blob store so a 404 never
	// leaves an orphaned object behind.
	noteID := c.Param("id")
	if _, err := noteService.GetNoteById(db, userID, noteID); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch note"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// The timestamp keeps retried uploads from colliding with the blob an
	// earlier partial failure may have left behind.
	filename := filepath.Base(fileHeader.Filename)
	key := fmt.Sprintf("%s/%s/%d-%s", userID, noteID, time.Now().UnixMilli(), filename)

	url, err := blobStore.Upload(c.Request.Context(), key, content, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store attachment"})
		return
	}

	note, err := noteService.SetAttachment(db, userID, noteID, url, filename)
	if err != nil {
		// The blob is already stored; the caller retries and a fresh key is
		// generated, leaving this one orphaned.
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note attachment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attachment_url":      note.AttachmentURL,
		"attachment_filename": note.AttachmentFilename,
	})
}

// currentUserID pulls the verified identity bound by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return "", false
	}
	return userID, true
}

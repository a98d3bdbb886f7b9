package routes

import (
	"net/http"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/models"
	"apuntes-app/apuntes/services"

	"github.com/gin-gonic/gin"
)

func RegisterSettingRoutes(group *gin.RouterGroup, db *database.Database, settingService services.SettingServiceInterface) {
	group.GET("/settings/quicknote", func(c *gin.Context) { GetQuickNote(c, db, settingService) })
	group.PUT("/settings/quicknote", func(c *gin.Context) { PutQuickNote(c, db, settingService) })
}

func GetQuickNote(c *gin.Context, db *database.Database, settingService services.SettingServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	value, err := settingService.GetSetting(db, userID, models.QuickNoteKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch quick note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

type quickNoteRequest struct {
	Content string `json:"content"`
}

func PutQuickNote(c *gin.Context, db *database.Database, settingService services.SettingServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req quickNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quick note payload"})
		return
	}

	if err := settingService.SetSetting(db, userID, models.QuickNoteKey, req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save quick note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

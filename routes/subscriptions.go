package routes

import (
	"net/http"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/services"

	"github.com/gin-gonic/gin"
)

func RegisterSubscriptionRoutes(group *gin.RouterGroup, db *database.Database, subscriptionService services.SubscriptionServiceInterface) {
	group.POST("/save-subscription", func(c *gin.Context) { SaveSubscription(c, db, subscriptionService) })
}

func SaveSubscription(c *gin.Context, db *database.Database, subscriptionService services.SubscriptionServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subscription payload"})
		return
	}

	if err := subscriptionService.SaveSubscription(db, userID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save subscription"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the API version reported by the version-check endpoint.
const Version = "1.0.0"

func RegisterVersionRoutes(group *gin.RouterGroup) {
	group.GET("/version-check", VersionCheck)
}

func VersionCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "apuntes-backend",
		"version": Version,
	})
}

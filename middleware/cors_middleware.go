package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware restricts cross-origin access to the configured allow-list
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"Authorization",
		"Accept-Encoding",
		"X-Requested-With",
	}...)

	return cors.New(corsConfig)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apuntes-app/apuntes/config"
	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/middleware"
	"apuntes-app/apuntes/push"
	"apuntes-app/apuntes/routes"
	"apuntes-app/apuntes/services"
	"apuntes-app/apuntes/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	authService, err := buildAuthService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}

	blobStore, err := storage.Setup(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	pushClient := push.NewClient(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDContact)

	noteService := services.NewNoteService()
	settingService := services.NewSettingService()
	subscriptionService := services.NewSubscriptionService()

	reminderService := services.NewReminderService(
		db,
		pushClient,
		subscriptionService,
		time.Duration(cfg.ReminderIntervalSeconds)*time.Second,
	)
	reminderService.Start()
	defer reminderService.Stop()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := router.Group("/api")
	routes.RegisterVersionRoutes(api)

	protected := api.Group("", middleware.AuthMiddleware(authService))
	routes.RegisterNoteRoutes(protected, db, noteService, blobStore)
	routes.RegisterSettingRoutes(protected, db, settingService)
	routes.RegisterSubscriptionRoutes(protected, db, subscriptionService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		reminderService.Stop()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildAuthService picks the verification mode from configuration: a shared
// HS256 secret validates locally, otherwise the issuer is discovered over
// OIDC and tokens are checked against its JWKS.
func buildAuthService(cfg config.Config) (services.AuthServiceInterface, error) {
	if cfg.AuthJWTSecret != "" {
		log.Println("Using shared-secret token verification")
		return services.NewHMACAuthService(cfg.AuthJWTSecret), nil
	}
	log.Printf("Using OIDC token verification against %s", cfg.AuthIssuerURL)
	return services.NewOIDCAuthService(context.Background(), cfg.AuthIssuerURL, cfg.AuthAudience)
}

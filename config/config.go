package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	AppPort        string
	AllowedOrigins string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxIdleConns int
	DBMaxOpenConns int

	// Identity provider. When AuthJWTSecret is set tokens are validated
	// locally with the provider's shared HS256 secret; otherwise the issuer
	// is discovered over OIDC and tokens are checked against its JWKS.
	AuthIssuerURL string
	AuthAudience  string
	AuthJWTSecret string

	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string
	S3PublicURL       string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDContact    string

	ReminderIntervalSeconds int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	log.Println("Loading configuration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "apuntes"),
		DBPassword:     getEnv("DB_PASSWORD", "apuntes"),
		DBName:         getEnv("DB_NAME", "apuntes"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),

		AuthIssuerURL: getEnv("AUTH_ISSUER_URL", ""),
		AuthAudience:  getEnv("AUTH_AUDIENCE", ""),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3Region:          getEnv("S3_REGION", "auto"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:          getEnv("S3_BUCKET", "apuntes-attachments"),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),

		VAPIDPublicKey:  getEnv("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey: getEnv("VAPID_PRIVATE_KEY", ""),
		VAPIDContact:    getEnv("VAPID_CONTACT", "mailto:admin@localhost"),

		ReminderIntervalSeconds: getEnvAsInt("REMINDER_INTERVAL_SECONDS", 60),
	}
}

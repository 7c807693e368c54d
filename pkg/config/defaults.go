// Package config provides centralized default values for PixelCraft
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Content Store
	ContentPath string

	// Chat Assistant
	OpenAIAPIKey      string
	ChatModel         string
	ChatMaxTokens     int
	ChatRemoteTimeout time.Duration
	ChatLocalDelay    time.Duration

	// Contact / Email
	ResendAPIKey     string
	ContactEmailFrom string
	ContactEmailName string
	ContactEmailTo   string

	// Admin
	AdminPasswordHash string
	JWTSecret         string
	AdminTokenTTL     time.Duration

	// Database
	SQLitePath               string
	TursoEnabled             bool
	TursoDatabaseURL         string
	TursoAuthToken           string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	DBConnMaxIdleMinutes     int

	// Media
	MediaBasePath    string
	MediaThumbWidth  int
	MediaWebPQuality int

	// Widget State TTLs
	ChatSessionTTL      time.Duration
	EstimatorSessionTTL time.Duration
	VoteStateTTL        time.Duration

	// Cleanup Intervals
	CleanupInterval time.Duration
	CleanupVerbose  bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Content Store
	ContentPath = getEnvString("PIXELCRAFT_CONTENT_PATH", "content/site.json")

	// Chat Assistant
	OpenAIAPIKey = getEnvString("OPENAI_API_KEY", "")
	ChatModel = getEnvString("CHAT_MODEL", "gpt-4o-mini")
	ChatMaxTokens = getEnvInt("CHAT_MAX_TOKENS", 512)
	ChatRemoteTimeout = getEnvDuration("CHAT_REMOTE_TIMEOUT", 20*time.Second)
	ChatLocalDelay = getEnvDuration("CHAT_LOCAL_DELAY", 600*time.Millisecond)

	// Contact / Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	ContactEmailFrom = getEnvString("CONTACT_EMAIL_FROM", "noreply@pixelcraft.agency")
	ContactEmailName = getEnvString("CONTACT_EMAIL_FROM_NAME", "PixelCraft")
	ContactEmailTo = getEnvString("CONTACT_EMAIL_TO", "hello@pixelcraft.agency")

	// Admin
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD", "")
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminTokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour)

	// Database
	SQLitePath = getEnvString("SQLITE_PATH", "db/pixelcraft.db")
	TursoEnabled = getEnvBool("TURSO_ENABLED", false)
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	DBConnMaxIdleMinutes = getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 3)

	// Media
	MediaBasePath = getEnvString("MEDIA_BASE_PATH", "media")
	MediaThumbWidth = getEnvInt("MEDIA_THUMB_WIDTH", 640)
	MediaWebPQuality = getEnvInt("MEDIA_WEBP_QUALITY", 80)

	// Widget State TTLs
	ChatSessionTTL = getEnvDuration("CHAT_SESSION_TTL", 2*time.Hour)
	EstimatorSessionTTL = getEnvDuration("ESTIMATOR_SESSION_TTL", 2*time.Hour)
	VoteStateTTL = getEnvDuration("VOTE_STATE_TTL", 2*time.Hour)

	// Cleanup Intervals
	CleanupInterval = getEnvDuration("CACHE_CLEANUP_INTERVAL", 30*time.Minute)
	CleanupVerbose = getEnvBool("CACHE_CLEANUP_VERBOSE", false)
}

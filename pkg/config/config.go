package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	FirebaseCredentials string
	FirestoreProjectID  string
	NotifySecret        string
	RelayTimeout        time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	relayTimeout := 5 * time.Second
	if raw := os.Getenv("RELAY_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			relayTimeout = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FirestoreProjectID:  getEnv("FIRESTORE_PROJECT_ID", ""),
		NotifySecret:        getEnv("NOTIFY_SECRET", ""),
		RelayTimeout:        relayTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

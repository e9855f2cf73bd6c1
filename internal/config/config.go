package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration

	RefreshInterval time.Duration
	ProbeInterval   time.Duration

	NotificationTTL  time.Duration
	NotificationFade time.Duration
}

// Load reads configuration from the environment, with a .env file as
// fallback. Every field has a usable default; malformed values fall back
// rather than failing startup.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:          getEnv("LEDGER_API_BASE_URL", "http://localhost:8080/api"),
		HTTPTimeout:      getEnvDuration("LEDGER_HTTP_TIMEOUT", 15*time.Second),
		RefreshInterval:  getEnvDuration("LEDGER_REFRESH_INTERVAL", 3*time.Second),
		ProbeInterval:    getEnvDuration("LEDGER_PROBE_INTERVAL", 5*time.Second),
		NotificationTTL:  getEnvDuration("LEDGER_NOTIFICATION_TTL", 4*time.Second),
		NotificationFade: getEnvDuration("LEDGER_NOTIFICATION_FADE", 300*time.Millisecond),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

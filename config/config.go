package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service
type Config struct {
	Port            string
	DBPath          string
	UseHTTPS        bool
	SessionLifetime int64
	// LoggedHosts are extra host type names whose log trails are served
	LoggedHosts []string
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "logtrail.db"),
		UseHTTPS:        os.Getenv("USE_HTTPS") == "true",
		SessionLifetime: 3600,
		LoggedHosts:     splitList(os.Getenv("LOGGED_HOSTS")),
	}

	if raw := os.Getenv("SESSION_LIFETIME"); raw != "" {
		lifetime, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || lifetime <= 0 {
			return nil, fmt.Errorf("invalid SESSION_LIFETIME %q: must be a positive number of seconds", raw)
		}
		cfg.SessionLifetime = lifetime
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

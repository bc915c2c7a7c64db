// Package config loads runtime configuration from the environment.  A
// .env file is honoured when present; otherwise values come from the
// process environment, with working defaults for local development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the top-level runtime settings.  DataBaseURL takes
// precedence over DataDir when both are set, so deployments can point
// at the static host the scraper publishes to while local runs read the
// data directory directly.
type Config struct {
	Env         string // application environment (dev/prod)
	Port        string // HTTP port to listen on
	DataDir     string // directory of <name>.json documents
	DataBaseURL string // upstream static host serving <name>.json
}

// Load reads the .env file, if any, and returns the populated Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using environment")
	}
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("APP_PORT", "8080"),
		DataDir:     getenv("DATA_DIR", "data"),
		DataBaseURL: os.Getenv("DATA_BASE_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return def
}

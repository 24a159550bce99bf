package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	UploadDir         string
	AllowedExtensions map[string]struct{}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local .env for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               env,
		DatabaseURL:       dbURL,
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AllowedExtensions: parseExtensions(getEnv("ALLOWED_EXTENSIONS", "pdf,png,jpg,jpeg,gif,doc,docx,txt")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func parseExtensions(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			out[ext] = struct{}{}
		}
	}
	return out
}

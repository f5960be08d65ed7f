package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Port   string
	AppEnv string
	// Directory holding the prebuilt SPA bundle
	StaticDir      string
	AllowedOrigins []string
	// SMTP Configuration
	SMTPHost           string
	SMTPPort           int
	SMTPSecure         bool // implicit TLS (SMTPS, usually port 465)
	SMTPUsername       string
	SMTPPassword       string
	SMTPFromEmail      string
	SMTPTimeoutSeconds int
	ContactEmailTo     string
	// Logging
	LogLevel string
	LogFile  string
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", EnvDevelopment))),
		// SMTP Configuration (Gmail SMTPS by default)
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 465),
		SMTPSecure:         getEnvBool("SMTP_SECURE", true),
		SMTPUsername:       getEnv("SMTP_USERNAME", getEnv("EMAIL_USER", "")),
		SMTPPassword:       getEnv("SMTP_PASSWORD", getEnv("EMAIL_PASSWORD", "")),
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", 30),
		ContactEmailTo:     getEnv("CONTACT_EMAIL_TO", "f.mohemam85@gmail.com"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
	}

	// Sender defaults to the SMTP login, same as most relay providers require
	cfg.SMTPFromEmail = getEnv("SMTP_FROM_EMAIL", cfg.SMTPUsername)
	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = "noreply@complianceai.com"
	}

	cfg.StaticDir = getEnv("STATIC_DIR", DefaultStaticDir(cfg.AppEnv))
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "*"))

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials are missing. Contact form submissions will fail to send.")
	}

	return cfg, nil
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// DefaultStaticDir returns where the SPA bundle lives for the given mode.
// Production builds ship the bundle next to the binary, development builds
// read it from the frontend build output.
func DefaultStaticDir(appEnv string) string {
	if appEnv == EnvProduction {
		return "public"
	}
	return "dist/public"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
)

// JWTSecret signs session tokens, read from env with a dev fallback.
var JWTSecret = []byte(getEnv("JWT_SECRET", "tasty_twist_session_secret_2024"))

// Config collects every knob the service reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	CORSOrigin   string
	StripeSecret string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	MailFrom     string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "tastyTwistOnline"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
		StripeSecret: getEnv("STRIPE_SECRET_KEY", ""),
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@tastytwist.online"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

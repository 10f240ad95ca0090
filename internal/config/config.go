package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	// Postgres. Vacío => repos in-memory.
	DBDSN       string
	AutoMigrate bool

	// Redis para sesiones. Vacío => sesiones in-memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL   time.Duration
	CookieSecure bool

	StripeSecretKey     string
	StripePriceID       string
	StripeWebhookSecret string

	SeedAdminEmail    string
	SeedAdminPassword string

	AuthRatePerMinute int
	// Solo detrás de un proxy propio: habilita X-Forwarded-For / X-Real-IP.
	TrustProxy bool

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee la configuración del entorno. Con ENV=dev carga antes el .env local.
func Load() Config {
	if strings.EqualFold(os.Getenv("ENV"), "dev") {
		_ = godotenv.Load()
	}

	return Config{
		Env:  getEnv("ENV", "prod"),
		Port: getEnv("PORT", "8080"),

		DBDSN:       os.Getenv("DB_DSN"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", false),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SessionTTL:   getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceID:       os.Getenv("STRIPE_PRICE_ID"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@vetstock.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),

		AuthRatePerMinute: getEnvInt("AUTH_RATE_PER_MINUTE", 30),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		AppName:   getEnv("APP_NAME", "vetstock"),
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) StripeEnabled() bool {
	return strings.TrimSpace(c.StripeSecretKey) != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Handoff  HandoffConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Assets   AssetsConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
	LogFormat   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls how long an idle visitor session is kept before the
// sweeper tears it down.
type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepSchedule string
}

type CatalogConfig struct {
	WinesFile                string // JSON produced by cmd/seed; empty means built-in wines
	SymmetricIncompatibility bool
}

type HandoffConfig struct {
	Store           string // memory, redis
	TTL             time.Duration
	ConfirmationTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers        []string
	OrderTopic     string
	PublishTimeout time.Duration
}

// Enabled reports whether order events should be published to Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type AssetsConfig struct {
	BaseURL       string // CloudFront or static host
	PresignExpiry time.Duration
	S3            S3Config
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type CheckoutConfig struct {
	GCashAccountName    string
	GCashAccountNumber  string
	StandardDeliveryFee int
	ExpressDeliveryFee  int
	MealCost            int
	PublicBaseURL       string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogFormat:   getEnv("LOG_FORMAT", "console"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Session: SessionConfig{
			IdleTimeout:   parseDuration(getEnv("SESSION_IDLE_TIMEOUT", "2h"), 2*time.Hour),
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		},
		Catalog: CatalogConfig{
			WinesFile:                getEnv("CATALOG_WINES_FILE", ""),
			SymmetricIncompatibility: parseBool(getEnv("CATALOG_SYMMETRIC_INCOMPATIBILITY", "false")),
		},
		Handoff: HandoffConfig{
			Store:           getEnv("HANDOFF_STORE", "memory"),
			TTL:             parseDuration(getEnv("HANDOFF_TTL", "30m"), 30*time.Minute),
			ConfirmationTTL: parseDuration(getEnv("CONFIRMATION_TTL", "24h"), 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Kafka: KafkaConfig{
			Brokers:        parseSlice(getEnv("KAFKA_BROKERS", "")),
			OrderTopic:     getEnv("KAFKA_ORDER_TOPIC", "winecraft.orders.confirmed"),
			PublishTimeout: parseDuration(getEnv("KAFKA_PUBLISH_TIMEOUT", "5s"), 5*time.Second),
		},
		Assets: AssetsConfig{
			BaseURL:       getEnv("ASSETS_BASE_URL", "http://localhost:5173/assets"),
			PresignExpiry: parseDuration(getEnv("ASSETS_PRESIGN_EXPIRY", "1h"), time.Hour),
			S3: S3Config{
				Region:          getEnv("AWS_REGION", "ap-southeast-1"),
				Bucket:          getEnv("AWS_S3_BUCKET", ""),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			},
		},
		Checkout: CheckoutConfig{
			GCashAccountName:    getEnv("GCASH_ACCOUNT_NAME", "Shekar Wine Co."),
			GCashAccountNumber:  getEnv("GCASH_ACCOUNT_NUMBER", "+63 917 123 4567"),
			StandardDeliveryFee: parseInt(getEnv("DELIVERY_FEE_STANDARD", "100"), 100),
			ExpressDeliveryFee:  parseInt(getEnv("DELIVERY_FEE_EXPRESS", "200"), 200),
			MealCost:            parseInt(getEnv("MEAL_COST", "50"), 50),
			PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

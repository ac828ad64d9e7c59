package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort string

	UseKafka     bool
	KafkaBrokers []string
	GroupID      string

	RedisAddr    string
	DedupEnabled bool
	DedupTTL     time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	SearchLogPath string

	PublishTimeout time.Duration
	EmailTimeout   time.Duration
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	getBool := func(key string, fallback bool) bool {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return fallback
	}

	getDuration := func(key string, fallback time.Duration) time.Duration {
		if v := os.Getenv(key); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		UseKafka:       getBool("USE_KAFKA", true),
		KafkaBrokers:   kafkaBrokers,
		GroupID:        getEnv("KAFKA_GROUP_ID", "email-service"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		DedupEnabled:   getBool("DEDUP_ENABLED", false),
		DedupTTL:       getDuration("DEDUP_TTL", 24*time.Hour),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		SMTPFrom:       getEnv("SMTP_FROM", "no-reply@example.com"),
		SearchLogPath:  getEnv("SEARCH_LOG_PATH", "./logs/search-logs.csv"),
		PublishTimeout: getDuration("PUBLISH_TIMEOUT", 5*time.Second),
		EmailTimeout:   getDuration("EMAIL_TIMEOUT", 10*time.Second),
	}
}

// Package config reads service settings from the environment. Values in a
// local .env file are loaded by godotenv/autoload in main.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"

	NotifierNATS    = "nats"
	NotifierWebhook = "webhook"
	NotifierNone    = "none"
)

type Config struct {
	Port           string
	StorageBackend string

	SignatureSecret string
	AdminToken      string

	MercadoPagoAccessToken string

	Notifier         string
	NATSURL          string
	NATSSubject      string
	NotifyWebhookURL string
	NotifyTimeout    time.Duration
	NotifyAsync      bool

	PricingTypesPath string

	LogLevel  string
	LogFormat string
}

func FromEnv() Config {
	return Config{
		Port:                   getenvDefault("PORT", "8080"),
		StorageBackend:         strings.ToLower(getenvDefault("STORAGE_BACKEND", BackendDynamoDB)),
		SignatureSecret:        os.Getenv("PAYMENT_SIGNATURE_SECRET"),
		AdminToken:             os.Getenv("ADMIN_API_TOKEN"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		Notifier:               strings.ToLower(getenvDefault("NOTIFIER", NotifierNone)),
		NATSURL:                getenvDefault("NATS_URL", "nats://localhost:4222"),
		NATSSubject:            getenvDefault("NATS_SUBJECT", "ipfiling.payments.confirmed"),
		NotifyWebhookURL:       os.Getenv("NOTIFY_WEBHOOK_URL"),
		NotifyTimeout:          durationDefault("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyAsync:            boolDefault("NOTIFY_ASYNC", true),
		PricingTypesPath:       os.Getenv("PRICING_TYPES_PATH"),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		LogFormat:              getenvDefault("LOG_FORMAT", "json"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationDefault(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func boolDefault(key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return b
}

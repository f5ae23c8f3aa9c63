package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	ServiceName   string
	DatabaseURL   string
	KafkaBrokers  []string
	CheckoutTopic string
	ConsumerGroup string
	LogLevel      string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func Load() *Config {
	return &Config{
		ServiceName:   "ordering",
		DatabaseURL:   must(os.Getenv("DATABASE_URL"), "DATABASE_URL"),
		KafkaBrokers:  strings.Split(must(os.Getenv("KAFKA_BROKERS"), "KAFKA_BROKERS"), ","),
		CheckoutTopic: getenv("KAFKA_CHECKOUT_TOPIC", "basket.checkout"),
		ConsumerGroup: getenv("KAFKA_CONSUMER_GROUP", "ordering"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

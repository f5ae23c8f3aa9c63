package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	ServiceName   string
	MongoURL      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	DiscountAddr  string
	KafkaBrokers  []string
	CheckoutTopic string
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
		ServiceName:   "basket",
		MongoURL:      must(os.Getenv("MONGO_URL"), "MONGO_URL"),
		MongoDatabase: getenv("MONGO_DATABASE", "basketdb"),
		RedisAddr:     must(os.Getenv("REDIS_ADDR"), "REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DiscountAddr:  must(os.Getenv("DISCOUNT_GRPC_ADDR"), "DISCOUNT_GRPC_ADDR"),
		KafkaBrokers:  strings.Split(must(os.Getenv("KAFKA_BROKERS"), "KAFKA_BROKERS"), ","),
		CheckoutTopic: getenv("KAFKA_CHECKOUT_TOPIC", "basket.checkout"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

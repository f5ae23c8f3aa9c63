package config

import (
	"log"
	"os"
)

type Config struct {
	ServiceName string
	GRPCAddr    string
	DatabasePath string
	LogLevel    string
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
		ServiceName:  "discount",
		GRPCAddr:     getenv("GRPC_ADDR", ":50051"),
		DatabasePath: must(os.Getenv("DISCOUNT_DB_PATH"), "DISCOUNT_DB_PATH"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}

package config

import (
	"log"
	"os"
)

type Config struct {
	ServiceName string
	ListenAddr  string
	CatalogURL  string
	BasketURL   string
	OrderURL    string
	JWTSecret   []byte
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
		ServiceName: "gateway",
		ListenAddr:  getenv("GATEWAY_ADDR", ":8080"),
		CatalogURL:  must(os.Getenv("CATALOG_URL"), "CATALOG_URL"),
		BasketURL:   must(os.Getenv("BASKET_URL"), "BASKET_URL"),
		OrderURL:    must(os.Getenv("ORDER_URL"), "ORDER_URL"),
		JWTSecret:   []byte(os.Getenv("GATEWAY_JWT_SECRET")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}
}

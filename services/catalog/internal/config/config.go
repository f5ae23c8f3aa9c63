package config

import (
	"log"
	"os"
)

type Config struct {
	ServiceName   string
	MongoURL      string
	MongoDatabase string
	ESURL         string
	ESUser        string
	ESPassword    string
	ESIndex       string
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
		ServiceName:   "catalog",
		MongoURL:      must(os.Getenv("MONGO_URL"), "MONGO_URL"),
		MongoDatabase: getenv("MONGO_DATABASE", "catalogdb"),
		ESURL:         must(os.Getenv("ES_URL"), "ES_URL"),
		ESUser:        os.Getenv("ES_USER"),
		ESPassword:    os.Getenv("ES_PASSWORD"),
		ESIndex:       getenv("ES_INDEX", "products"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eshopx/microservices/pkg/esdb"
	"github.com/eshopx/microservices/pkg/logging"
	loggingmw "github.com/eshopx/microservices/pkg/middleware/logging"
	"github.com/eshopx/microservices/pkg/mongodb"
	catalogcfg "github.com/eshopx/microservices/services/catalog/internal/config"
	"github.com/eshopx/microservices/services/catalog/internal/httpserver"
	"github.com/eshopx/microservices/services/catalog/internal/repo"
	"github.com/eshopx/microservices/services/catalog/internal/search"
	"github.com/eshopx/microservices/services/catalog/internal/service"
)

func main() {
	if err := godotenv.Load("services/catalog/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := catalogcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongodb.Connect(initCtx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	esClient, err := esdb.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
	if err != nil {
		log.Fatalf("elasticsearch connect: %v", err)
	}

	svc := &service.CatalogService{
		Repo:   &repo.MongoRepo{Col: mongoClient.Database(cfg.MongoDatabase).Collection("products")},
		Search: &search.ESIndexer{Client: esClient, Index: cfg.ESIndex},
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.CatalogHTTP{Svc: svc},
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("catalog listening on :%s", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	_ = mongoClient.Disconnect(shutdownCtx)

	log.Println("catalog stopped")
}

package main

import (
	"context"
	"errors"
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

	"github.com/eshopx/microservices/pkg/db"
	"github.com/eshopx/microservices/pkg/logging"
	loggingmw "github.com/eshopx/microservices/pkg/middleware/logging"
	"github.com/eshopx/microservices/services/ordering/internal/config"
	"github.com/eshopx/microservices/services/ordering/internal/consumer"
	"github.com/eshopx/microservices/services/ordering/internal/httpserver"
	"github.com/eshopx/microservices/services/ordering/internal/models"
	"github.com/eshopx/microservices/services/ordering/internal/repo"
	"github.com/eshopx/microservices/services/ordering/internal/service"
)

func main() {
	if err := godotenv.Load("services/ordering/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	if err := database.AutoMigrate(&models.Order{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	svc := &service.OrderService{Repo: &repo.GormRepo{DB: database}}

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	checkoutConsumer := consumer.New(logger, cfg.KafkaBrokers, cfg.CheckoutTopic, cfg.ConsumerGroup, svc)
	go func() {
		if err := checkoutConsumer.Run(consumerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("checkout consumer stopped", "error", err)
		}
	}()

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
		OrderHandler: &httpserver.OrderHTTP{Svc: svc},
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("ordering listening on :%s", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	stopConsumer()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("ordering stopped")
}

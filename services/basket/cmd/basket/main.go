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

	"github.com/eshopx/microservices/pkg/kafka"
	"github.com/eshopx/microservices/pkg/logging"
	loggingmw "github.com/eshopx/microservices/pkg/middleware/logging"
	"github.com/eshopx/microservices/pkg/mongodb"
	"github.com/eshopx/microservices/pkg/redisdb"
	basketcfg "github.com/eshopx/microservices/services/basket/internal/config"
	"github.com/eshopx/microservices/services/basket/internal/discount"
	"github.com/eshopx/microservices/services/basket/internal/httpserver"
	"github.com/eshopx/microservices/services/basket/internal/repo"
	"github.com/eshopx/microservices/services/basket/internal/service"
)

func main() {
	if err := godotenv.Load("services/basket/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := basketcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongodb.Connect(initCtx, cfg.MongoURL)
	if err != nil {
		cancel()
		log.Fatalf("mongo connect: %v", err)
	}

	redisClient, err := redisdb.Connect(initCtx, cfg.RedisAddr, cfg.RedisPassword)
	cancel()
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	discountClient, err := discount.NewClient(logger, cfg.DiscountAddr)
	if err != nil {
		log.Fatalf("discount client: %v", err)
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.CheckoutTopic)

	baskets := &repo.CachedRepo{
		Inner: &repo.MongoRepo{Col: mongoClient.Database(cfg.MongoDatabase).Collection("baskets")},
		Cache: &repo.RedisCache{Client: redisClient, TTL: time.Hour},
	}

	svc := &service.BasketService{
		Repo:     baskets,
		Discount: discountClient,
		Events:   producer,
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
		BasketHandler: &httpserver.BasketHTTP{Svc: svc},
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("basket listening on :%s", port)
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

	_ = producer.Close()
	_ = discountClient.Close()
	_ = redisClient.Close()
	_ = mongoClient.Disconnect(shutdownCtx)

	log.Println("basket stopped")
}

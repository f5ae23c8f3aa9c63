package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/discount/internal/config"
	"github.com/eshopx/microservices/services/discount/internal/grpcserver"
	"github.com/eshopx/microservices/services/discount/internal/models"
	"github.com/eshopx/microservices/services/discount/internal/repo"
	"github.com/eshopx/microservices/services/discount/internal/service"
)

func main() {
	if err := godotenv.Load("services/discount/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	svc := &service.DiscountService{Repo: &repo.GormRepo{DB: db}}
	srv := &grpcserver.Server{Log: logger, Svc: svc}

	gs, err := grpcserver.Run(cfg.GRPCAddr, srv)
	if err != nil {
		log.Fatalf("grpc listen: %v", err)
	}
	log.Printf("discount listening on %s", cfg.GRPCAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	gs.GracefulStop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("discount stopped")
}

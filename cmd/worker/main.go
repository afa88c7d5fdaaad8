package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinnkaaa/booking-system/config"
	"github.com/tinnkaaa/booking-system/internal/email"
	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		log.Fatal("kafka brokers and notifications topic are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, log)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info("notification worker started", zap.String("topic", cfg.Kafka.NotificationsTopic))
	if err := consumer.Consume(ctx, sender.Send); err != nil {
		log.Error("consumer stopped", zap.Error(err))
	}
	log.Info("notification worker stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tinnkaaa/booking-system/api"
	"github.com/tinnkaaa/booking-system/config"
	"github.com/tinnkaaa/booking-system/internal/admin"
	"github.com/tinnkaaa/booking-system/internal/bootstrap"
	"github.com/tinnkaaa/booking-system/internal/cache"
	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/logger"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/repository/memory"
	"github.com/tinnkaaa/booking-system/internal/service/booking"
	"github.com/tinnkaaa/booking-system/internal/service/flights"
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

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repos      *repository.Store
		serverOpts []bootstrap.Option
	)
	switch cfg.Database.Driver {
	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		repos = memory.New().Repositories()
	default:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatal("connect postgres", zap.Error(err))
		}
		defer pool.Close()

		if cfg.Database.Migrate {
			if err := repository.Migrate(ctx, pool, log); err != nil {
				log.Fatal("migrate", zap.Error(err))
			}
		}
		repos = repository.NewPGStore(pool)
		serverOpts = append(serverOpts, bootstrap.WithHealthCheck(pool.Ping))
	}

	var listCache flights.ListCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ListTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, list cache errors will be logged", zap.Error(err))
		}
		listCache = redisCache
	}

	var notifier *booking.Notifier
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.BookingTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka unavailable, change events will be dropped", zap.Error(err))
		}
		notifier = booking.NewNotifier(
			producer,
			repos.Bookings,
			repos.Passengers,
			cfg.Kafka.BookingTopic,
			log,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	router := api.NewRouter(log, api.AdminResources(api.Services{
		Airlines:   flights.NewAirlineService(repos.Airlines, listCache, log),
		Airports:   flights.NewAirportService(repos.Airports, listCache, log),
		Flights:    flights.NewFlightService(repos.Flights, listCache, log),
		Bookings:   booking.NewBookingService(repos.Bookings, notifier, log),
		Passengers: booking.NewPassengerService(repos.Passengers, log),
		Tickets:    booking.NewTicketService(repos.Tickets, notifier, log),
		Payments:   booking.NewPaymentService(repos.Payments, notifier, log),
		Display:    admin.NewDisplay(repos),
	})...)

	if err := bootstrap.Run(ctx, cfg, router, log, serverOpts...); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dverbeek/cinebook/config"
	"github.com/dverbeek/cinebook/internal/cache"
	"github.com/dverbeek/cinebook/internal/kafka"
	"github.com/dverbeek/cinebook/internal/logging"
	"github.com/dverbeek/cinebook/internal/notify"
	"github.com/dverbeek/cinebook/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker consumes booking events for notifications and keeps the catalog
// cache warm so the movie service rarely has to hit Postgres on the hot
// list path.
func main() {
	_ = godotenv.Load()

	log := logging.New(os.Getenv("LOG_LEVEL"))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.CatalogCacheTTLSeconds)*time.Second)
	movieRepo := repository.NewMovieRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
	defer consumer.Close()

	sender := notify.NewSender(log)

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Warn("decode booking event", "error", err)
				return nil
			}
			return sender.Send(ctx, event)
		}); err != nil {
			log.Warn("consumer stopped", "error", err)
		}
	}()

	warmTicker := time.NewTicker(time.Duration(cfg.Worker.CatalogWarmMinutes) * time.Minute)
	defer warmTicker.Stop()

	for {
		select {
		case <-warmTicker.C:
			movies, err := movieRepo.List(ctx)
			if err != nil {
				log.Warn("warm catalog cache", "error", err)
				continue
			}
			if err := redisCache.SetCatalog(ctx, movies); err != nil {
				log.Warn("set catalog cache", "error", err)
			}
		case <-ctx.Done():
			log.Info("shutting down")
			return
		}
	}
}

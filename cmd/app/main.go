package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dverbeek/cinebook/config"
	"github.com/dverbeek/cinebook/internal/bootstrap"
	"github.com/dverbeek/cinebook/internal/cache"
	"github.com/dverbeek/cinebook/internal/clients"
	"github.com/dverbeek/cinebook/internal/kafka"
	"github.com/dverbeek/cinebook/internal/logging"
	"github.com/dverbeek/cinebook/internal/migrations"
	"github.com/dverbeek/cinebook/internal/repository"
	"github.com/dverbeek/cinebook/internal/service/bookings"
	"github.com/dverbeek/cinebook/internal/service/movies"
	"github.com/dverbeek/cinebook/internal/service/showtimes"
	"github.com/dverbeek/cinebook/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

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

	if err := migrations.Up(ctx, cfg.Database.DSN()); err != nil {
		log.Error("run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.CatalogCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	movieRepo := repository.NewMovieRepository(pool)
	showtimeRepo := repository.NewShowtimeRepository(pool)
	ledgerRepo := repository.NewLedgerRepository(pool)

	calendarClient := clients.NewCalendar(cfg.Services.ShowtimeURL)
	catalogClient := clients.NewCatalog(cfg.Services.MovieURL)
	ledgerClient := clients.NewLedger(cfg.Services.BookingURL)

	movieService := movies.NewMovieService(movieRepo, redisCache, log)
	showtimeService := showtimes.NewShowtimeService(showtimeRepo)
	bookingService := bookings.NewBookingService(
		ledgerRepo,
		bookings.NewValidator(calendarClient, catalogClient),
		redisCache,
		time.Duration(cfg.Booking.UserLockTTLSeconds)*time.Second,
		log,
		bookings.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
	)
	userService := users.NewUserService(userRepo, catalogClient, ledgerClient, log)

	if err := bootstrap.Run(ctx, cfg, userService, bookingService, movieService, showtimeService); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

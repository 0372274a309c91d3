package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dverbeek/cinebook/api"
	"github.com/dverbeek/cinebook/config"
	"github.com/dverbeek/cinebook/internal/service/bookings"
	"github.com/dverbeek/cinebook/internal/service/movies"
	"github.com/dverbeek/cinebook/internal/service/showtimes"
	"github.com/dverbeek/cinebook/internal/service/users"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the four HTTP services and blocks until the context is canceled
// or a server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	userSvc users.UserUseCase,
	bookingSvc bookings.BookingUseCase,
	movieSvc movies.MovieUseCase,
	showtimeSvc showtimes.ShowtimeUseCase,
) error {
	servers := []*http.Server{
		{Addr: cfg.Services.UserAddress, Handler: newUserEngine(cfg, userSvc)},
		{Addr: cfg.Services.BookingAddress, Handler: newBookingEngine(bookingSvc)},
		{Addr: cfg.Services.MovieAddress, Handler: newMovieEngine(movieSvc)},
		{Addr: cfg.Services.ShowtimeAddress, Handler: newShowtimeEngine(showtimeSvc)},
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(s *http.Server) {
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
		}
		return nil
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

func newUserEngine(cfg *config.Config, svc users.UserUseCase) *gin.Engine {
	r := newEngine()
	api.NewUserHandler(svc).Register(r.Group("/users"))

	if cfg.Services.SwaggerDir != "" {
		r.StaticFS("/swagger", http.Dir(cfg.Services.SwaggerDir))
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/cinebook.swagger.json"),
		)))
	}
	return r
}

func newBookingEngine(svc bookings.BookingUseCase) *gin.Engine {
	r := newEngine()
	api.NewBookingHandler(svc).Register(r.Group("/bookings"))
	return r
}

func newMovieEngine(svc movies.MovieUseCase) *gin.Engine {
	r := newEngine()
	api.NewMovieHandler(svc).Register(r.Group("/movies"))
	return r
}

func newShowtimeEngine(svc showtimes.ShowtimeUseCase) *gin.Engine {
	r := newEngine()
	api.NewShowtimeHandler(svc).Register(r.Group("/showtimes"))
	return r
}

package bookings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/dverbeek/cinebook/internal/kafka"
	"github.com/dverbeek/cinebook/internal/repository"
)

type BookingUseCase interface {
	GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error)
	Add(ctx context.Context, userID, date, movieID string) ([]domain.DateEntry, error)
}

type CalendarClient interface {
	GetSlot(ctx context.Context, date string) (*domain.ShowtimeSlot, error)
}

type CatalogClient interface {
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
}

type Locker interface {
	AcquireUserLock(ctx context.Context, userID string, ttl time.Duration) (bool, error)
	ReleaseUserLock(ctx context.Context, userID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	ledger      repository.LedgerRepository
	validator   *Validator
	locker      Locker
	producer    Producer
	eventsTopic string
	lockTTL     time.Duration
	log         *slog.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(
	ledger repository.LedgerRepository,
	validator *Validator,
	locker Locker,
	lockTTL time.Duration,
	log *slog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		ledger:    ledger,
		validator: validator,
		locker:    locker,
		lockTTL:   lockTTL,
		log:       log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error) {
	entries, err := s.ledger.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		// Ledger entries are created lazily on the first booking; a user
		// without one is indistinguishable from an unknown user here.
		return nil, domain.ErrBookingNotFound
	}
	return entries, nil
}

// Add runs the full write pipeline: validate against calendar and catalog,
// reject duplicates against current ledger state, apply the mutation and
// persist. Writes for the same user are serialized through the per-user lock
// so the read-modify-write cannot lose updates.
func (s *BookingService) Add(ctx context.Context, userID, date, movieID string) ([]domain.DateEntry, error) {
	if s.locker != nil {
		if err := s.acquireLock(ctx, userID); err != nil {
			return nil, err
		}
		defer func() {
			if err := s.locker.ReleaseUserLock(ctx, userID); err != nil {
				s.log.Warn("release user lock failed", "user_id", userID, "error", err)
			}
		}()
	}

	booking, err := s.validator.Validate(ctx, userID, date, movieID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledger.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Date != booking.Date {
			continue
		}
		for _, id := range e.Movies {
			if id == booking.MovieID {
				return nil, domain.ErrDuplicateBooking
			}
		}
	}

	updated := Apply(entries, booking)

	if err := s.ledger.AddMovie(ctx, userID, booking.Date, booking.MovieID); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_added", booking)
	return updated, nil
}

// acquireLock polls the per-user lock until acquired or the context ends, so
// concurrent bookings for one user queue up instead of failing outright.
func (s *BookingService) acquireLock(ctx context.Context, userID string) error {
	for {
		ok, err := s.locker.AcquireUserLock(ctx, userID, s.lockTTL)
		if err != nil {
			return fmt.Errorf("%w: acquire user lock: %v", domain.ErrUpstreamUnavailable, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking domain.ValidatedBooking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:    eventType,
		UserID:  booking.UserID,
		Date:    booking.Date,
		MovieID: booking.MovieID,
		Time:    time.Now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.UserID, event); err != nil {
		s.log.Warn("publish booking event failed", "user_id", booking.UserID, "error", err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)

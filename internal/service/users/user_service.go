package users

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/dverbeek/cinebook/internal/repository"
	"github.com/google/uuid"
)

type UserUseCase interface {
	Register(ctx context.Context, firstName, lastName string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id, firstName, lastName string) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	Movies(ctx context.Context, userID string) (map[string]domain.Movie, error)
	Movie(ctx context.Context, userID, movieID string) (*domain.Movie, error)
	RateMovie(ctx context.Context, userID, movieID, rating string) (*domain.Movie, error)

	Bookings(ctx context.Context, userID string) (*domain.EnrichedBookings, error)
	Book(ctx context.Context, userID, date, movieID string) (*domain.EnrichedBookings, error)
}

type CatalogClient interface {
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	ListAll(ctx context.Context) (map[string]domain.Movie, error)
	UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error)
}

type LedgerClient interface {
	GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error)
	Add(ctx context.Context, userID, date, movieID string) ([]domain.DateEntry, error)
}

type UserService struct {
	users   repository.UserRepository
	catalog CatalogClient
	ledger  LedgerClient
	now     func() time.Time
	log     *slog.Logger
}

func NewUserService(users repository.UserRepository, catalog CatalogClient, ledger LedgerClient, log *slog.Logger) *UserService {
	return &UserService{users: users, catalog: catalog, ledger: ledger, now: time.Now, log: log}
}

func (s *UserService) Register(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	if err := validateName(firstName, lastName); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName),
		LastActive: s.now().Unix(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id, firstName, lastName string) (*domain.User, error) {
	if err := validateName(firstName, lastName); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName)
	return s.users.UpdateName(ctx, id, name, s.now().Unix())
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) Movies(ctx context.Context, userID string) (map[string]domain.Movie, error) {
	if err := s.touch(ctx, userID); err != nil {
		return nil, err
	}
	return s.catalog.ListAll(ctx)
}

func (s *UserService) Movie(ctx context.Context, userID, movieID string) (*domain.Movie, error) {
	if err := s.touch(ctx, userID); err != nil {
		return nil, err
	}
	return s.catalog.GetMovie(ctx, movieID)
}

// RateMovie accepts the rating as a numeric string, as it arrives in the URL.
// Values that do not parse or fall outside [0,10] are rejected, never clamped.
func (s *UserService) RateMovie(ctx context.Context, userID, movieID, rating string) (*domain.Movie, error) {
	if err := s.touch(ctx, userID); err != nil {
		return nil, err
	}

	value, err := strconv.ParseFloat(rating, 64)
	if err != nil || value < 0 || value > 10 {
		return nil, domain.ErrInvalidRating
	}
	return s.catalog.UpdateRating(ctx, movieID, value)
}

// Bookings returns the user's ledger with every movie id reconciled against a
// live catalog snapshot. Ids whose metadata lookup fails stay in the result
// as stubs.
func (s *UserService) Bookings(ctx context.Context, userID string) (*domain.EnrichedBookings, error) {
	if err := s.touch(ctx, userID); err != nil {
		return nil, err
	}

	raw, err := s.ledger.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.EnrichedBookings{UserID: userID, Dates: Enrich(raw, catalog)}, nil
}

func (s *UserService) Book(ctx context.Context, userID, date, movieID string) (*domain.EnrichedBookings, error) {
	if err := s.touch(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := s.ledger.Add(ctx, userID, date, movieID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.EnrichedBookings{UserID: userID, Dates: Enrich(updated, catalog)}, nil
}

// touch verifies the user exists and refreshes last_active, as every
// user-scoped action does.
func (s *UserService) touch(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Touch(ctx, userID, s.now().Unix()); err != nil {
		s.log.Warn("refresh last_active failed", "user_id", userID, "error", err)
	}
	return nil
}

func validateName(firstName, lastName string) error {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(firstName) == "" {
		verr.Add("first_name", domain.CodeMissingField, "first name must not be empty")
	}
	if strings.TrimSpace(lastName) == "" {
		verr.Add("last_name", domain.CodeMissingField, "last name must not be empty")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

var _ UserUseCase = (*UserService)(nil)

package notify

import (
	"context"
	"log/slog"

	"github.com/dverbeek/cinebook/internal/kafka"
)

// Sender delivers booking notifications consumed from the events topic.
// Currently it only logs; a mail or push integration plugs in here.
type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.log.InfoContext(ctx, "booking notification",
		"type", event.Type,
		"user_id", event.UserID,
		"date", event.Date,
		"movie_id", event.MovieID,
	)
	return nil
}

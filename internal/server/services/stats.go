package services

import (
	"context"

	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/credits"
	"github.com/rashii/rashii/internal/server/repositories/notes"
	"github.com/rashii/rashii/internal/server/repositories/promises"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

// Stats is the flat counts object served by GET /stats.
type Stats struct {
	Promises  int `json:"promises"`
	Reminders int `json:"reminders"`
	Credits   int `json:"credits"`
	Notes     int `json:"notes"`
}

type StatsService struct {
	promises  promises.Repository
	reminders reminders.Repository
	credits   credits.Repository
	notes     notes.Repository
	logger    logging.Logger
}

func NewStatsService(p promises.Repository, r reminders.Repository, c credits.Repository, n notes.Repository, l logging.Logger) *StatsService {
	return &StatsService{
		promises:  p,
		reminders: r,
		credits:   c,
		notes:     n,
		logger:    l.With("module", "stats"),
	}
}

// Counts returns the four dashboard counts. On any underlying failure it
// degrades to all zeros instead of propagating the error, so the dashboard
// renders even when the store is unreachable.
func (s *StatsService) Counts(ctx context.Context) Stats {
	pending, err := s.promises.CountByStatus(ctx, models.PromiseStatusPending)
	if err != nil {
		s.logger.Error(ctx, "stats query failed", "err", err)
		return Stats{}
	}

	incomplete, err := s.reminders.CountIncomplete(ctx)
	if err != nil {
		s.logger.Error(ctx, "stats query failed", "err", err)
		return Stats{}
	}

	owed, err := s.credits.CountByStatus(ctx, models.CreditStatusPending)
	if err != nil {
		s.logger.Error(ctx, "stats query failed", "err", err)
		return Stats{}
	}

	total, err := s.notes.Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "stats query failed", "err", err)
		return Stats{}
	}

	return Stats{Promises: pending, Reminders: incomplete, Credits: owed, Notes: total}
}

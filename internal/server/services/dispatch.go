package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/email"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

// DispatchFailure records one reminder that could not be delivered or
// marked, with the error message the next invocation will retry past.
type DispatchFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// DispatchDetails lists the per-reminder outcomes of one job run.
type DispatchDetails struct {
	Sent   []string          `json:"sent"`
	Failed []DispatchFailure `json:"failed"`
}

// DispatchSummary is the result of one dispatch invocation.
type DispatchSummary struct {
	Success bool            `json:"success"`
	Sent    int             `json:"sent"`
	Failed  int             `json:"failed"`
	Details DispatchDetails `json:"details"`
}

// DispatchService delivers due reminder emails. Eligibility is a two-stage
// pipeline: the repository filters on the indexable equality predicate
// (completed = false AND email_notify = true) and the precise
// datetime <= now AND emailSentAt == null check runs in memory here. The
// split is intentional: the store predicate stays index-friendly and the
// time comparison stays in one place.
//
// emailSentAt is the sole de-duplication mechanism. The check and the mark
// are not one atomic conditional write, so two overlapping invocations can
// both send the same reminder. Known race, unresolved on purpose.
type DispatchService struct {
	repo   reminders.Repository
	sender email.Sender
	logger logging.Logger
	from   string
	to     string
	now    func() time.Time
}

func NewDispatchService(repo reminders.Repository, sender email.Sender, logger logging.Logger, from, to string) *DispatchService {
	return &DispatchService{
		repo:   repo,
		sender: sender,
		logger: logger.With("module", "dispatch"),
		from:   from,
		to:     to,
		now:    time.Now,
	}
}

// Run performs one sweep: select, send, mark, one reminder at a time. A
// failure on one reminder never aborts the rest; failed reminders keep
// emailSentAt null and stay eligible for the next invocation. If the store
// itself is unreachable the sweep aborts with an error and no updates.
func (s *DispatchService) Run(ctx context.Context) (*DispatchSummary, error) {
	candidates, err := s.repo.ListIncompleteNotifiable(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	now := s.now()
	summary := &DispatchSummary{
		Success: true,
		Details: DispatchDetails{Sent: []string{}, Failed: []DispatchFailure{}},
	}

	for _, reminder := range candidates {
		if reminder.Datetime.After(now) || reminder.EmailSentAt != nil {
			continue
		}

		if err := s.deliver(ctx, reminder, now); err != nil {
			s.logger.Error(ctx, "reminder delivery failed", "id", reminder.ID, "err", err)
			summary.Details.Failed = append(summary.Details.Failed, DispatchFailure{
				ID:    reminder.ID,
				Error: err.Error(),
			})
			continue
		}

		summary.Details.Sent = append(summary.Details.Sent, reminder.ID)
	}

	summary.Sent = len(summary.Details.Sent)
	summary.Failed = len(summary.Details.Failed)

	s.logger.Info(ctx, "dispatch sweep finished", "sent", summary.Sent, "failed", summary.Failed)

	return summary, nil
}

func (s *DispatchService) deliver(ctx context.Context, reminder *models.Reminder, now time.Time) error {
	msg := email.Message{
		From:    s.from,
		To:      s.to,
		Subject: email.ReminderSubject(reminder),
		HTML:    email.ReminderHTML(reminder),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	if err := s.repo.MarkEmailSent(ctx, reminder.ID, now); err != nil {
		// The email went out but the flag did not land; the next sweep
		// will send again. Surfaced as a failure so it is visible.
		return fmt.Errorf("mark sent: %w", err)
	}

	return nil
}

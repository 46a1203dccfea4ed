package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

type ReminderService struct {
	repo reminders.Repository
}

func NewReminderService(repo reminders.Repository) *ReminderService {
	return &ReminderService{repo: repo}
}

// List returns all reminders, soonest first.
func (s *ReminderService) List(ctx context.Context) ([]*models.Reminder, error) {
	return s.repo.List(ctx)
}

// Create stores a new reminder. Recurrence defaults to "none" and
// emailNotify to true when omitted; completed and emailSentAt always start
// false/null regardless of input.
func (s *ReminderService) Create(ctx context.Context, createdBy, title string, datetime time.Time, recurrence *string, emailNotify *bool) (*models.Reminder, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if datetime.IsZero() {
		return nil, fmt.Errorf("%w: datetime is required", common.ErrorValidation)
	}

	rec := models.RecurrenceNone
	if recurrence != nil {
		rec = *recurrence
	}
	if !models.ValidRecurrence(rec) {
		return nil, fmt.Errorf("%w: invalid recurrence %q", common.ErrorValidation, rec)
	}

	notify := true
	if emailNotify != nil {
		notify = *emailNotify
	}

	reminder := &models.Reminder{
		Title:       title,
		Datetime:    datetime,
		Recurrence:  rec,
		EmailNotify: notify,
		Completed:   false,
		EmailSentAt: nil,
		CreatedBy:   createdBy,
	}

	return s.repo.Create(ctx, reminder)
}

// Update applies a partial update after validating enum-valued fields.
func (s *ReminderService) Update(ctx context.Context, id string, upd reminders.Update) error {
	if upd.Empty() {
		return fmt.Errorf("%w: no fields to update", common.ErrorValidation)
	}
	if upd.Recurrence != nil && !models.ValidRecurrence(*upd.Recurrence) {
		return fmt.Errorf("%w: invalid recurrence %q", common.ErrorValidation, *upd.Recurrence)
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *ReminderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

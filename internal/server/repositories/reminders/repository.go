package reminders

import (
	"context"
	"time"

	"github.com/rashii/rashii/internal/server/models"
)

// Update is an explicit partial-update shape: nil fields stay untouched.
// EmailSentAt is not included on purpose; only the dispatch job writes it,
// through MarkEmailSent.
type Update struct {
	Title       *string    `json:"title"`
	Datetime    *time.Time `json:"datetime"`
	Recurrence  *string    `json:"recurrence"`
	EmailNotify *bool      `json:"emailNotify"`
	Completed   *bool      `json:"completed"`
}

// Empty reports whether the update names no fields at all.
func (u Update) Empty() bool {
	return u.Title == nil && u.Datetime == nil && u.Recurrence == nil &&
		u.EmailNotify == nil && u.Completed == nil
}

type Repository interface {
	List(ctx context.Context) ([]*models.Reminder, error)
	Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	Update(ctx context.Context, id string, upd Update) error
	Delete(ctx context.Context, id string) error

	// ListIncompleteNotifiable is the coarse half of the dispatch
	// predicate: completed = false AND email_notify = true. The precise
	// due/unsent filter happens in memory in the dispatch service.
	ListIncompleteNotifiable(ctx context.Context) ([]*models.Reminder, error)
	MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error

	CountIncomplete(ctx context.Context) (int, error)
}

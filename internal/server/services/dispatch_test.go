package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/email"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

// --- fakes ---

type fakeRemindersRepo struct {
	reminders []*models.Reminder
	listErr   error

	marked  map[string]time.Time
	markErr map[string]error
}

func (f *fakeRemindersRepo) List(ctx context.Context) ([]*models.Reminder, error) {
	return f.reminders, f.listErr
}

func (f *fakeRemindersRepo) ListIncompleteNotifiable(ctx context.Context) ([]*models.Reminder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Reminder
	for _, r := range f.reminders {
		if !r.Completed && r.EmailNotify {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRemindersRepo) Create(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	r.ID = "new"
	return r, nil
}

func (f *fakeRemindersRepo) Update(ctx context.Context, id string, upd reminders.Update) error {
	return nil
}

func (f *fakeRemindersRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeRemindersRepo) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	if err := f.markErr[id]; err != nil {
		return err
	}
	if f.marked == nil {
		f.marked = map[string]time.Time{}
	}
	f.marked[id] = sentAt
	return nil
}

func (f *fakeRemindersRepo) CountIncomplete(ctx context.Context) (int, error) { return 0, nil }

type fakeSender struct {
	sent    []email.Message
	failFor map[string]error // keyed by subject substring match via title
	titles  []string
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	for title, err := range f.failFor {
		if msg.Subject == "⏰ Reminder: "+title {
			return err
		}
	}
	f.sent = append(f.sent, msg)
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newDispatch(repo *fakeRemindersRepo, sender *fakeSender, now time.Time) *DispatchService {
	s := NewDispatchService(repo, sender, discardLogger(), "Rashii Reminders <onboarding@resend.dev>", "useiteverywhereboy@gmail.com")
	s.now = func() time.Time { return now }
	return s
}

func reminder(id, title string, datetime time.Time, opts ...func(*models.Reminder)) *models.Reminder {
	r := &models.Reminder{
		ID:          id,
		Title:       title,
		Datetime:    datetime,
		Recurrence:  models.RecurrenceNone,
		EmailNotify: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// --- tests ---

func TestDispatch_SendsDueReminderOnce(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeRemindersRepo{reminders: []*models.Reminder{
		reminder("r-1", "Buy flowers", now.Add(-time.Hour)),
	}}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, []string{"r-1"}, summary.Details.Sent)
	assert.Empty(t, summary.Details.Failed)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "⏰ Reminder: Buy flowers", sender.sent[0].Subject)
	assert.Equal(t, "useiteverywhereboy@gmail.com", sender.sent[0].To)

	sentAt, ok := repo.marked["r-1"]
	require.True(t, ok, "emailSentAt must be set after a successful send")
	assert.Equal(t, now, sentAt)
}

func TestDispatch_SkipsAlreadySent(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-2 * time.Hour)
	repo := &fakeRemindersRepo{reminders: []*models.Reminder{
		reminder("r-1", "done already", now.Add(-time.Hour), func(r *models.Reminder) {
			r.EmailSentAt = &earlier
		}),
	}}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Empty(t, sender.sent, "already-sent reminders must not be resent")
	assert.Empty(t, repo.marked)
}

func TestDispatch_SkipsFutureReminders(t *testing.T) {
	now := time.Now()
	repo := &fakeRemindersRepo{reminders: []*models.Reminder{
		reminder("r-1", "not yet", now.Add(time.Minute)),
	}}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, sender.sent)
}

func TestDispatch_SendFailureIsolated(t *testing.T) {
	now := time.Now()
	repo := &fakeRemindersRepo{reminders: []*models.Reminder{
		reminder("r-1", "will fail", now.Add(-time.Hour)),
		reminder("r-2", "will succeed", now.Add(-time.Hour)),
	}}
	sender := &fakeSender{failFor: map[string]error{"will fail": errors.New("smtp boom")}}

	summary, err := newDispatch(repo, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Success, "per-item failures still report overall success")
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"r-2"}, summary.Details.Sent)

	require.Len(t, summary.Details.Failed, 1)
	assert.Equal(t, "r-1", summary.Details.Failed[0].ID)
	assert.Contains(t, summary.Details.Failed[0].Error, "smtp boom")

	_, marked := repo.marked["r-1"]
	assert.False(t, marked, "failed send must leave emailSentAt null")
	_, marked = repo.marked["r-2"]
	assert.True(t, marked)
}

func TestDispatch_MarkFailureReported(t *testing.T) {
	now := time.Now()
	repo := &fakeRemindersRepo{
		reminders: []*models.Reminder{reminder("r-1", "flaky store", now.Add(-time.Hour))},
		markErr:   map[string]error{"r-1": errors.New("write timeout")},
	}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	require.Len(t, summary.Details.Failed, 1)
	assert.Equal(t, "r-1", summary.Details.Failed[0].ID)
	assert.Contains(t, summary.Details.Failed[0].Error, "write timeout")
}

func TestDispatch_StoreDownAbortsWithNoSends(t *testing.T) {
	repo := &fakeRemindersRepo{listErr: errors.New("connection refused")}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, time.Now()).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Empty(t, sender.sent)
}

func TestDispatch_EmptyDetailsAreEmptySlices(t *testing.T) {
	repo := &fakeRemindersRepo{}
	sender := &fakeSender{}

	summary, err := newDispatch(repo, sender, time.Now()).Run(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, summary.Details.Sent)
	assert.NotNil(t, summary.Details.Failed)
}

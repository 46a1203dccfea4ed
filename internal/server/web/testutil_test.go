package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/config"
	"github.com/rashii/rashii/internal/server/email"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/credits"
	"github.com/rashii/rashii/internal/server/repositories/notes"
	"github.com/rashii/rashii/internal/server/repositories/promises"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
	"github.com/rashii/rashii/internal/server/services"
	"github.com/rashii/rashii/internal/server/users"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- in-memory fakes ---

type memPromises struct {
	items   []*models.Promise
	listErr error
}

func (m *memPromises) List(ctx context.Context) ([]*models.Promise, error) {
	return m.items, m.listErr
}

func (m *memPromises) Get(ctx context.Context, id string) (*models.Promise, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memPromises) Create(ctx context.Context, p *models.Promise) (*models.Promise, error) {
	p.ID = fmt.Sprintf("p-%d", len(m.items)+1)
	p.CreatedAt = time.Now()
	m.items = append(m.items, p)
	return p, nil
}

func (m *memPromises) UpdateStatus(ctx context.Context, id, status string, entry models.HistoryEntry) error {
	for _, p := range m.items {
		if p.ID == id {
			p.Status = status
			p.History = append(p.History, entry)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memPromises) Delete(ctx context.Context, id string) error {
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memPromises) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, p := range m.items {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

type memReminders struct {
	items   []*models.Reminder
	listErr error
	marked  map[string]time.Time
}

func (m *memReminders) List(ctx context.Context) ([]*models.Reminder, error) {
	return m.items, m.listErr
}

func (m *memReminders) ListIncompleteNotifiable(ctx context.Context) ([]*models.Reminder, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Reminder
	for _, r := range m.items {
		if !r.Completed && r.EmailNotify {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReminders) Create(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	r.ID = fmt.Sprintf("r-%d", len(m.items)+1)
	r.CreatedAt = time.Now()
	m.items = append(m.items, r)
	return r, nil
}

func (m *memReminders) Update(ctx context.Context, id string, upd reminders.Update) error {
	for _, r := range m.items {
		if r.ID == id {
			if upd.Title != nil {
				r.Title = *upd.Title
			}
			if upd.Datetime != nil {
				r.Datetime = *upd.Datetime
			}
			if upd.Recurrence != nil {
				r.Recurrence = *upd.Recurrence
			}
			if upd.EmailNotify != nil {
				r.EmailNotify = *upd.EmailNotify
			}
			if upd.Completed != nil {
				r.Completed = *upd.Completed
			}
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memReminders) Delete(ctx context.Context, id string) error {
	for i, r := range m.items {
		if r.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memReminders) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	for _, r := range m.items {
		if r.ID == id {
			t := sentAt
			r.EmailSentAt = &t
			if m.marked == nil {
				m.marked = map[string]time.Time{}
			}
			m.marked[id] = sentAt
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memReminders) CountIncomplete(ctx context.Context) (int, error) {
	n := 0
	for _, r := range m.items {
		if !r.Completed {
			n++
		}
	}
	return n, nil
}

type memCredits struct {
	items []*models.Credit
}

func (m *memCredits) List(ctx context.Context) ([]*models.Credit, error) { return m.items, nil }

func (m *memCredits) Create(ctx context.Context, c *models.Credit) (*models.Credit, error) {
	c.ID = fmt.Sprintf("c-%d", len(m.items)+1)
	c.CreatedAt = time.Now()
	m.items = append(m.items, c)
	return c, nil
}

func (m *memCredits) UpdateStatus(ctx context.Context, id, status string, redeemedAt *time.Time) error {
	for _, c := range m.items {
		if c.ID == id {
			c.Status = status
			c.RedeemedAt = redeemedAt
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memCredits) Delete(ctx context.Context, id string) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memCredits) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, c := range m.items {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

type memNotes struct {
	items []*models.Note
}

func (m *memNotes) List(ctx context.Context) ([]*models.Note, error) { return m.items, nil }

func (m *memNotes) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	n.ID = fmt.Sprintf("n-%d", len(m.items)+1)
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	m.items = append(m.items, n)
	return n, nil
}

func (m *memNotes) Update(ctx context.Context, id string, upd notes.Update) error {
	for _, n := range m.items {
		if n.ID == id {
			if upd.Title != nil {
				n.Title = *upd.Title
			}
			if upd.Content != nil {
				n.Content = *upd.Content
			}
			if upd.Tags != nil {
				n.Tags = *upd.Tags
			}
			if upd.Type != nil {
				n.Type = *upd.Type
			}
			if upd.TargetDate != nil {
				n.TargetDate = upd.TargetDate
			}
			if upd.Completed != nil {
				n.Completed = *upd.Completed
			}
			n.UpdatedAt = time.Now()
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memNotes) Delete(ctx context.Context, id string) error {
	for i, n := range m.items {
		if n.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memNotes) Count(ctx context.Context) (int, error) { return len(m.items), nil }

type recordingSender struct {
	sent    []email.Message
	sendErr error
}

func (r *recordingSender) Send(ctx context.Context, msg email.Message) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sent = append(r.sent, msg)
	return nil
}

// --- server construction ---

type testEnv struct {
	server    *Server
	promises  *memPromises
	reminders *memReminders
	credits   *memCredits
	notes     *memNotes
	sender    *recordingSender
	db        sqlmock.Sqlmock
}

var (
	_ promises.Repository  = (*memPromises)(nil)
	_ reminders.Repository = (*memReminders)(nil)
	_ credits.Repository   = (*memCredits)(nil)
	_ notes.Repository     = (*memNotes)(nil)
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.CronSecret = "cron-secret"

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	registry := users.NewRegistry(cfg.Users)

	env := &testEnv{
		promises:  &memPromises{},
		reminders: &memReminders{},
		credits:   &memCredits{},
		notes:     &memNotes{},
		sender:    &recordingSender{},
		db:        mock,
	}

	env.server = NewServer(Deps{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		DB:        db,
		Auth:      services.NewAuthService(registry),
		Promises:  services.NewPromiseService(env.promises),
		Reminders: services.NewReminderService(env.reminders),
		Credits:   services.NewCreditService(env.credits, registry),
		Notes:     services.NewNoteService(env.notes),
		Stats:     services.NewStatsService(env.promises, env.reminders, env.credits, env.notes, logger),
		Dispatch:  services.NewDispatchService(env.reminders, env.sender, logger, cfg.EmailFrom, cfg.EmailTo),
	})

	return env
}

// do performs a request against the test server, optionally with a valid
// session cookie for the given user.
func (e *testEnv) do(t *testing.T, method, path string, body any, asUser string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if asUser != "" {
		value, err := encodeSession(Session{UserID: asUser, Name: asUser, LoginTime: time.Now().UnixMilli()})
		if err != nil {
			t.Fatalf("encode session: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})
	}

	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

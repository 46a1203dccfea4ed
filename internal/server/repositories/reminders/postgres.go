package reminders

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/dbx"
	"github.com/rashii/rashii/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const reminderColumns = "id, title, datetime, recurrence, email_notify, completed, email_sent_at, created_by, created_at"

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Reminder, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM reminders ORDER BY datetime ASC`, reminderColumns)

	return r.queryReminders(ctx, query)
}

func (r *PostgresRepository) ListIncompleteNotifiable(ctx context.Context) ([]*models.Reminder, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM reminders WHERE completed = false AND email_notify = true`, reminderColumns)

	return r.queryReminders(ctx, query)
}

func (r *PostgresRepository) queryReminders(ctx context.Context, query string, args ...any) ([]*models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reminder
	for rows.Next() {
		rem := &models.Reminder{}
		err := rows.Scan(&rem.ID, &rem.Title, &rem.Datetime, &rem.Recurrence,
			&rem.EmailNotify, &rem.Completed, &rem.EmailSentAt, &rem.CreatedBy, &rem.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	reminder.ID = uuid.NewString()

	query :=
		`INSERT INTO reminders (id, title, datetime, recurrence, email_notify, completed, email_sent_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		reminder.ID, reminder.Title, reminder.Datetime, reminder.Recurrence,
		reminder.EmailNotify, reminder.Completed, reminder.EmailSentAt,
		reminder.CreatedBy).Scan(&reminder.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reminder, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd Update) error {
	sets := make([]string, 0, 5)
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Datetime != nil {
		add("datetime", *upd.Datetime)
	}
	if upd.Recurrence != nil {
		add("recurrence", *upd.Recurrence)
	}
	if upd.EmailNotify != nil {
		add("email_notify", *upd.EmailNotify)
	}
	if upd.Completed != nil {
		add("completed", *upd.Completed)
	}

	if len(sets) == 0 {
		return common.ErrorValidation
	}

	query := fmt.Sprintf(`UPDATE reminders SET %s WHERE id = $1`, strings.Join(sets, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

// MarkEmailSent records the idempotency flag after a successful send. It is
// a plain UPDATE, not a conditional write: two overlapping dispatch runs
// can both send before either write lands (documented race).
func (r *PostgresRepository) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET email_sent_at = $2 WHERE id = $1`, id, sentAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) CountIncomplete(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM reminders WHERE completed = false`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

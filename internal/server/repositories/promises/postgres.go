package promises

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Promise, error) {
	query :=
		`SELECT id, title, description, due_date, status, created_by, created_at, history
		 FROM promises
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Promise
	for rows.Next() {
		p, err := scanPromise(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Promise, error) {
	query :=
		`SELECT id, title, description, due_date, status, created_by, created_at, history
		 FROM promises
		 WHERE id = $1
		 `

	p := &models.Promise{}
	var history []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.DueDate, &p.Status, &p.CreatedBy, &p.CreatedAt, &history)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(history, &p.History); err != nil {
		return nil, fmt.Errorf("history decode error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, promise *models.Promise) (*models.Promise, error) {
	history, err := json.Marshal(promise.History)
	if err != nil {
		return nil, fmt.Errorf("history encode error: %w", err)
	}

	promise.ID = uuid.NewString()

	query :=
		`INSERT INTO promises (id, title, description, due_date, status, created_by, history)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		promise.ID, promise.Title, promise.Description, promise.DueDate,
		promise.Status, promise.CreatedBy, history).Scan(&promise.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return promise, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string, entry models.HistoryEntry) error {
	encoded, err := json.Marshal([]models.HistoryEntry{entry})
	if err != nil {
		return fmt.Errorf("history encode error: %w", err)
	}

	query :=
		`UPDATE promises
		 SET status = $2, history = history || $3::jsonb
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, status, encoded)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM promises WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func scanPromise(rows *sql.Rows) (*models.Promise, error) {
	p := &models.Promise{}
	var history []byte
	err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DueDate, &p.Status,
		&p.CreatedBy, &p.CreatedAt, &history)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(history, &p.History); err != nil {
		return nil, fmt.Errorf("history decode error: %w", err)
	}
	return p, nil
}

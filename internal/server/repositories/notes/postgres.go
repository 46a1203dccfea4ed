package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Note, error) {
	query :=
		`SELECT id, title, content, tags, type, target_date, completed, created_by, created_at, updated_at
		 FROM notes
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		n := &models.Note{}
		var tags []byte
		err := rows.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.Type,
			&n.TargetDate, &n.Completed, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(tags, &n.Tags); err != nil {
			return nil, fmt.Errorf("tags decode error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return nil, fmt.Errorf("tags encode error: %w", err)
	}

	note.ID = uuid.NewString()

	query :=
		`INSERT INTO notes (id, title, content, tags, type, target_date, completed, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		note.ID, note.Title, note.Content, tags, note.Type,
		note.TargetDate, note.Completed, note.CreatedBy).Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd Update) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Content != nil {
		add("content", *upd.Content)
	}
	if upd.Tags != nil {
		encoded, err := json.Marshal(*upd.Tags)
		if err != nil {
			return fmt.Errorf("tags encode error: %w", err)
		}
		add("tags", encoded)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.TargetDate != nil {
		add("target_date", *upd.TargetDate)
	}
	if upd.Completed != nil {
		add("completed", *upd.Completed)
	}

	query := fmt.Sprintf(`UPDATE notes SET %s WHERE id = $1`, strings.Join(sets, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notes`).Scan(&count)
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

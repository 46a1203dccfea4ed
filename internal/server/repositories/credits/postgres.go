package credits

import (
	"context"
	"database/sql"
	"fmt"
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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Credit, error) {
	query :=
		`SELECT id, title, description, owed_by, owed_to, status, created_by, created_at, redeemed_at
		 FROM credits
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Credit
	for rows.Next() {
		c := &models.Credit{}
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.OwedBy, &c.OwedTo,
			&c.Status, &c.CreatedBy, &c.CreatedAt, &c.RedeemedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, credit *models.Credit) (*models.Credit, error) {
	credit.ID = uuid.NewString()

	query :=
		`INSERT INTO credits (id, title, description, owed_by, owed_to, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		credit.ID, credit.Title, credit.Description, credit.OwedBy,
		credit.OwedTo, credit.Status, credit.CreatedBy).Scan(&credit.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credit, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string, redeemedAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE credits SET status = $2, redeemed_at = $3 WHERE id = $1`,
		id, status, redeemedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM credits WHERE status = $1`, status).Scan(&count)
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

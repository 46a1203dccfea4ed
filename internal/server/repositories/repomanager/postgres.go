package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rashii/rashii/internal/server/migrations"
	"github.com/rashii/rashii/internal/server/repositories/credits"
	"github.com/rashii/rashii/internal/server/repositories/notes"
	"github.com/rashii/rashii/internal/server/repositories/promises"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	promises  promises.Repository
	reminders reminders.Repository
	credits   credits.Repository
	notes     notes.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Promises() promises.Repository {
	return m.promises
}

func (m *PostgresRepositoryManager) Reminders() reminders.Repository {
	return m.reminders
}

func (m *PostgresRepositoryManager) Credits() credits.Repository {
	return m.credits
}

func (m *PostgresRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		promises:  promises.NewPostgresRepository(db),
		reminders: reminders.NewPostgresRepository(db),
		credits:   credits.NewPostgresRepository(db),
		notes:     notes.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

// Package repomanager owns the database handle and hands out one
// repository per collection.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rashii/rashii/internal/server/repositories/credits"
	"github.com/rashii/rashii/internal/server/repositories/notes"
	"github.com/rashii/rashii/internal/server/repositories/promises"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Promises() promises.Repository
	Reminders() reminders.Repository
	Credits() credits.Repository
	Notes() notes.Repository
}

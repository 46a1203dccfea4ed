package promises

import (
	"context"

	"github.com/rashii/rashii/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Promise, error)
	Get(ctx context.Context, id string) (*models.Promise, error)
	Create(ctx context.Context, promise *models.Promise) (*models.Promise, error)
	UpdateStatus(ctx context.Context, id string, status string, entry models.HistoryEntry) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

package credits

import (
	"context"
	"time"

	"github.com/rashii/rashii/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Credit, error)
	Create(ctx context.Context, credit *models.Credit) (*models.Credit, error)
	// UpdateStatus sets the status and, when redeemedAt is non-nil, the
	// redemption timestamp in the same write.
	UpdateStatus(ctx context.Context, id string, status string, redeemedAt *time.Time) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

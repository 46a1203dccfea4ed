package notes

import (
	"context"

	"github.com/rashii/rashii/internal/server/models"
)

// Update is an explicit partial-update shape: nil fields stay untouched.
// Any update refreshes updated_at, even when no other field is named.
type Update struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	Type       *string   `json:"type"`
	TargetDate *string   `json:"targetDate"`
	Completed  *bool     `json:"completed"`
}

type Repository interface {
	List(ctx context.Context) ([]*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, id string, upd Update) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/promises"
)

type PromiseService struct {
	repo promises.Repository
	now  func() time.Time
}

func NewPromiseService(repo promises.Repository) *PromiseService {
	return &PromiseService{repo: repo, now: time.Now}
}

func (s *PromiseService) List(ctx context.Context) ([]*models.Promise, error) {
	return s.repo.List(ctx)
}

func (s *PromiseService) Get(ctx context.Context, id string) (*models.Promise, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new pending promise with a single "created" history entry.
func (s *PromiseService) Create(ctx context.Context, createdBy, title, description string, dueDate *string) (*models.Promise, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	promise := &models.Promise{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      models.PromiseStatusPending,
		CreatedBy:   createdBy,
		History: []models.HistoryEntry{
			{Action: "created", By: createdBy, Date: s.now()},
		},
	}

	return s.repo.Create(ctx, promise)
}

// SetStatus transitions a promise and appends the matching history entry.
// Enum membership is enforced; a transition matrix is not. Resubmitting a
// terminal status is accepted.
func (s *PromiseService) SetStatus(ctx context.Context, actor, id, status string) error {
	if !models.ValidPromiseStatus(status) {
		return fmt.Errorf("%w: invalid status %q", common.ErrorValidation, status)
	}

	entry := models.HistoryEntry{
		Action: "marked as " + status,
		By:     actor,
		Date:   s.now(),
	}

	return s.repo.UpdateStatus(ctx, id, status, entry)
}

func (s *PromiseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/credits"
	"github.com/rashii/rashii/internal/server/users"
)

type CreditService struct {
	repo     credits.Repository
	registry *users.Registry
	now      func() time.Time
}

func NewCreditService(repo credits.Repository, registry *users.Registry) *CreditService {
	return &CreditService{repo: repo, registry: registry, now: time.Now}
}

func (s *CreditService) List(ctx context.Context) ([]*models.Credit, error) {
	return s.repo.List(ctx)
}

// Create stores a new pending credit. OwedTo is derived as the counterparty
// of owedBy, never taken from the request.
func (s *CreditService) Create(ctx context.Context, createdBy, title, description, owedBy string) (*models.Credit, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if owedBy == "" {
		return nil, fmt.Errorf("%w: owedBy is required", common.ErrorValidation)
	}

	owedTo, err := s.registry.Other(owedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown owedBy %q", common.ErrorValidation, owedBy)
	}

	credit := &models.Credit{
		Title:       title,
		Description: description,
		OwedBy:      owedBy,
		OwedTo:      owedTo,
		Status:      models.CreditStatusPending,
		CreatedBy:   createdBy,
	}

	return s.repo.Create(ctx, credit)
}

// SetStatus transitions a credit. Redeeming stamps redeemedAt; moving back
// to pending clears it.
func (s *CreditService) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidCreditStatus(status) {
		return fmt.Errorf("%w: invalid status %q", common.ErrorValidation, status)
	}

	var redeemedAt *time.Time
	if status == models.CreditStatusRedeemed {
		t := s.now()
		redeemedAt = &t
	}

	return s.repo.UpdateStatus(ctx, id, status, redeemedAt)
}

func (s *CreditService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

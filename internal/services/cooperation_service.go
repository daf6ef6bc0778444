package services

import (
	"context"

	"referral-backend/internal/models"
)

// CooperationStore is the persistence seam for company-manager links
type CooperationStore interface {
	List(ctx context.Context) ([]*models.Cooperation, error)
	Toggle(ctx context.Context, companyID, propertyManagerID int) error
}

type CooperationService struct {
	Repo CooperationStore
}

func NewCooperationService(repo CooperationStore) *CooperationService {
	return &CooperationService{Repo: repo}
}

func (s *CooperationService) List(ctx context.Context) ([]*models.Cooperation, error) {
	return s.Repo.List(ctx)
}

// Toggle flips the cooperation between a company and a property manager:
// an existing link is removed, a missing one is created
func (s *CooperationService) Toggle(ctx context.Context, companyID, propertyManagerID int) error {
	return s.Repo.Toggle(ctx, companyID, propertyManagerID)
}

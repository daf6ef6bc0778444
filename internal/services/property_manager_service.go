package services

import (
	"context"

	"referral-backend/internal/models"
)

// PropertyManagerStore is the persistence seam for property managers
type PropertyManagerStore interface {
	List(ctx context.Context) ([]*models.PropertyManager, error)
	Get(ctx context.Context, id int) (*models.PropertyManager, error)
	Create(ctx context.Context, req *models.CreatePropertyManagerRequest) (*models.PropertyManager, error)
	Update(ctx context.Context, id int, req *models.UpdatePropertyManagerRequest) (*models.PropertyManager, error)
	Delete(ctx context.Context, id int) error
}

type PropertyManagerService struct {
	Repo PropertyManagerStore
}

func NewPropertyManagerService(repo PropertyManagerStore) *PropertyManagerService {
	return &PropertyManagerService{Repo: repo}
}

func (s *PropertyManagerService) List(ctx context.Context) ([]*models.PropertyManager, error) {
	return s.Repo.List(ctx)
}

func (s *PropertyManagerService) Get(ctx context.Context, id int) (*models.PropertyManager, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PropertyManagerService) Create(ctx context.Context, req *models.CreatePropertyManagerRequest) (*models.PropertyManager, error) {
	return s.Repo.Create(ctx, req)
}

func (s *PropertyManagerService) Update(ctx context.Context, id int, req *models.UpdatePropertyManagerRequest) (*models.PropertyManager, error) {
	return s.Repo.Update(ctx, id, req)
}

func (s *PropertyManagerService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

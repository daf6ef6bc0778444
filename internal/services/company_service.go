package services

import (
	"context"

	"referral-backend/internal/models"
)

// CompanyStore is the persistence seam for partner companies
type CompanyStore interface {
	List(ctx context.Context) ([]*models.Company, error)
	Get(ctx context.Context, id int) (*models.Company, error)
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	Update(ctx context.Context, id int, req *models.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int) error
}

type CompanyService struct {
	Repo CompanyStore
}

func NewCompanyService(repo CompanyStore) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) List(ctx context.Context) ([]*models.Company, error) {
	return s.Repo.List(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id int) (*models.Company, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CompanyService) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	return s.Repo.Create(ctx, req)
}

func (s *CompanyService) Update(ctx context.Context, id int, req *models.UpdateCompanyRequest) (*models.Company, error) {
	return s.Repo.Update(ctx, id, req)
}

func (s *CompanyService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"referral-backend/internal/cache"
	"referral-backend/internal/models"
)

// SettingsStore is the persistence seam for the single settings row
type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error)
	AllocateInvoiceNumber(ctx context.Context) (int, error)
}

type SettingsService struct {
	Repo SettingsStore
}

func NewSettingsService(repo SettingsStore) *SettingsService {
	return &SettingsService{Repo: repo}
}

// Get returns the settings row, seeding defaults on first call.
// Reads go through Redis when available; the row changes rarely.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	if data, ok := cache.GetCached(ctx, cache.SettingsKey); ok {
		settings := &models.Settings{}
		if err := json.Unmarshal(data, settings); err == nil {
			return settings, nil
		}
	}

	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(settings); err == nil {
		cache.SetCached(ctx, cache.SettingsKey, data, 24*time.Hour)
	}

	return settings, nil
}

// Update patches the settings row and drops the cached copy
func (s *SettingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.Repo.Update(ctx, req)
	if err != nil {
		return nil, err
	}

	cache.InvalidateSettingsCache(ctx)
	return settings, nil
}

// AllocateInvoiceNumber increments and returns the invoice counter.
// The counter lives in the settings row, so the cached copy goes stale
// on every allocation and must be dropped.
func (s *SettingsService) AllocateInvoiceNumber(ctx context.Context) (int, error) {
	n, err := s.Repo.AllocateInvoiceNumber(ctx)
	if err != nil {
		return 0, err
	}

	cache.InvalidateSettingsCache(ctx)
	return n, nil
}

package services

import (
	"context"
	"testing"

	"referral-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsStore struct {
	settings models.Settings
}

func (f *fakeSettingsStore) Get(ctx context.Context) (*models.Settings, error) {
	s := f.settings
	return &s, nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	if req.CompanyName != nil {
		f.settings.CompanyName = *req.CompanyName
	}
	if req.Address != nil {
		f.settings.Address = *req.Address
	}
	if req.Email != nil {
		f.settings.Email = *req.Email
	}
	if req.Website != nil {
		f.settings.Website = *req.Website
	}
	if req.NextInvoiceNumber != nil {
		f.settings.NextInvoiceNumber = *req.NextInvoiceNumber
	}
	s := f.settings
	return &s, nil
}

func (f *fakeSettingsStore) AllocateInvoiceNumber(ctx context.Context) (int, error) {
	n := f.settings.NextInvoiceNumber
	f.settings.NextInvoiceNumber++
	return n, nil
}

func defaultTestSettings() models.Settings {
	return models.Settings{
		ID:                1,
		CompanyName:       "Notprofi24.at",
		Address:           "Heiligenstädterstraße 152/6, 1190 Wien",
		Email:             "office@notprofi24.at",
		Website:           "www.notprofi24.at",
		NextInvoiceNumber: 1,
	}
}

func TestSettingsUpdatePatchesOnlyGivenFields(t *testing.T) {
	store := &fakeSettingsStore{settings: defaultTestSettings()}
	svc := NewSettingsService(store)

	name := "Neue Firma GmbH"
	updated, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{CompanyName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Neue Firma GmbH", updated.CompanyName)
	assert.Equal(t, "office@notprofi24.at", updated.Email)
	assert.Equal(t, 1, updated.NextInvoiceNumber)
}

func TestAllocateInvoiceNumberIncrementsCounter(t *testing.T) {
	store := &fakeSettingsStore{settings: defaultTestSettings()}
	svc := NewSettingsService(store)

	for want := 1; want <= 3; want++ {
		n, err := svc.AllocateInvoiceNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, settings.NextInvoiceNumber)
}

package services

import (
	"testing"
	"time"

	"referral-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGenerateInvoicePDF(t *testing.T) {
	settings := defaultTestSettings()
	vat := "ATU12345678"
	companyID := 1
	invoice := &models.InvoiceForPDF{
		Invoice: models.Invoice{
			ID:            1,
			InvoiceNumber: "RE-202401-0001",
			Date:          time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
			MonthYear:     "2024-01",
			CompanyID:     &companyID,
			TotalAmount:   "50.50",
			Status:        models.InvoiceStatusCreated,
		},
		Company: &models.Company{
			ID:               1,
			Name:             "Installateur Müller GmbH",
			Address:          "Hauptstraße 1, 1010 Wien",
			VatID:            &vat,
			PaymentTermsDays: 14,
		},
		Jobs: []*models.JobWithManager{
			{
				Job: models.Job{
					JobNumber:   "NP24-123456",
					CreatedAt:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
					Trade:       "Sanitär",
					Status:      models.JobStatusDone,
					ReferralFee: "50.50",
				},
				PropertyManager: &models.PropertyManager{Name: "HV Wienwert"},
			},
		},
	}

	data, err := NewPDFService().GenerateInvoicePDF(&settings, invoice)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateJobPDFWithoutReport(t *testing.T) {
	settings := defaultTestSettings()
	job := &models.JobForPDF{
		Job: models.Job{
			JobNumber:       "NP24-654321",
			CreatedAt:       time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			LocationAddress: "Grinzinger Allee 3, 1190 Wien",
			Trade:           "Elektrik",
			Status:          models.JobStatusOpen,
			ReferralFee:     "0",
		},
	}

	data, err := NewPDFService().GenerateJobPDF(&settings, job)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateJobPDFWithReport(t *testing.T) {
	settings := defaultTestSettings()
	job := &models.JobForPDF{
		Job: models.Job{
			JobNumber:       "NP24-654322",
			CreatedAt:       time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			LocationAddress: "Grinzinger Allee 3, 1190 Wien",
			Trade:           "Elektrik",
			Status:          models.JobStatusDone,
			ReferralFee:     "80",
			Description:     strPtr("Sicherungskasten prüfen"),
		},
		Company:         &models.Company{Name: "Elektro Huber"},
		PropertyManager: &models.PropertyManager{Name: "HV Donaustadt"},
		Report: &models.JobReport{
			JobID:    1,
			Steps:    strPtr("Fehlersuche, Sicherung getauscht"),
			Times:    strPtr("14:00 - 15:30"),
			Material: strPtr("1x Sicherungsautomat B16"),
			Result:   strPtr("Anlage wieder in Betrieb"),
		},
	}

	data, err := NewPDFService().GenerateJobPDF(&settings, job)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

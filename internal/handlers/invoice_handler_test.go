package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referral-backend/internal/models"
	"referral-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyMonthLister struct{}

func (emptyMonthLister) ListByMonth(ctx context.Context, monthYear string) ([]*models.Job, error) {
	return nil, nil
}

// noRowsInvoiceStore answers every lookup the way an empty table would
type noRowsInvoiceStore struct{}

func (noRowsInvoiceStore) List(ctx context.Context) ([]*models.InvoiceWithCompany, error) {
	return nil, nil
}

func (noRowsInvoiceStore) CreateWithJobs(ctx context.Context, invoice *models.Invoice, jobIDs []int) error {
	return nil
}

func (noRowsInvoiceStore) MarkPaid(ctx context.Context, id int, paidAt time.Time) (*models.Invoice, error) {
	return nil, pgx.ErrNoRows
}

func (noRowsInvoiceStore) GetForPDF(ctx context.Context, id int) (*models.InvoiceForPDF, error) {
	return nil, pgx.ErrNoRows
}

func TestGenerateInvoicesUnknownMonthYieldsEmptyList(t *testing.T) {
	// Garbage months match nothing; the endpoint answers with an empty
	// list rather than an error
	h := NewInvoiceHandler(services.NewInvoiceService(emptyMonthLister{}, nil, nil), nil, nil)

	cases := []string{
		`{"month_year":"202401"}`,
		`{"month_year":"2024-13"}`,
		`{"month_year":"not-a-month"}`,
		`{"month_year":""}`,
		`{}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/invoices/generate", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()
		h.GenerateInvoices(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, "body %s", body)

		var invoices []*models.Invoice
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoices))
		assert.Empty(t, invoices, "body %s", body)
	}
}

func TestPayInvoiceUnknownIDReturns404(t *testing.T) {
	h := NewInvoiceHandler(services.NewInvoiceService(nil, noRowsInvoiceStore{}, nil), nil, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/42/pay", bytes.NewReader([]byte(`{}`)))
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.PayInvoice(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleCooperationRequiresBothIDs(t *testing.T) {
	h := NewCooperationHandler(services.NewCooperationService(nil))

	cases := []string{
		`{"company_id":1}`,
		`{"property_manager_id":2}`,
		`{}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/cooperations", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()
		h.ToggleCooperation(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

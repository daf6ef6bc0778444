package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobLister struct {
	jobs []*models.Job
	err  error
}

func (f *fakeJobLister) ListByMonth(ctx context.Context, monthYear string) ([]*models.Job, error) {
	return f.jobs, f.err
}

type fakeInvoiceStore struct {
	created []*models.Invoice
	linked  map[string][]int
	nextID  int
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{linked: make(map[string][]int)}
}

func (f *fakeInvoiceStore) CreateWithJobs(ctx context.Context, invoice *models.Invoice, jobIDs []int) error {
	f.nextID++
	invoice.ID = f.nextID
	f.created = append(f.created, invoice)
	f.linked[invoice.InvoiceNumber] = jobIDs
	return nil
}

func (f *fakeInvoiceStore) List(ctx context.Context) ([]*models.InvoiceWithCompany, error) {
	return nil, nil
}

func (f *fakeInvoiceStore) MarkPaid(ctx context.Context, id int, paidAt time.Time) (*models.Invoice, error) {
	for _, inv := range f.created {
		if inv.ID == id {
			inv.Status = models.InvoiceStatusPaid
			inv.PaidAt = &paidAt
			return inv, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeInvoiceStore) GetForPDF(ctx context.Context, id int) (*models.InvoiceForPDF, error) {
	return nil, errors.New("no rows in result set")
}

type fakeCounter struct {
	next  int
	calls int
}

func (f *fakeCounter) AllocateInvoiceNumber(ctx context.Context) (int, error) {
	f.calls++
	n := f.next
	f.next++
	return n, nil
}

func testJob(id int, companyID *int, status, fee string, invoiceID *int) *models.Job {
	return &models.Job{
		ID:          id,
		JobNumber:   "NP24-000001",
		CreatedAt:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		CompanyID:   companyID,
		Status:      status,
		ReferralFee: fee,
		InvoiceID:   invoiceID,
	}
}

func intPtr(v int) *int { return &v }

func TestGenerateGroupsJobsByCompany(t *testing.T) {
	jobs := &fakeJobLister{jobs: []*models.Job{
		testJob(1, intPtr(1), models.JobStatusDone, "30", nil),
		testJob(2, intPtr(2), models.JobStatusDone, "10", nil),
		testJob(3, intPtr(1), models.JobStatusDone, "20.50", nil),
	}}
	store := newFakeInvoiceStore()
	counter := &fakeCounter{next: 5}
	svc := NewInvoiceService(jobs, store, counter)

	invoices, err := svc.Generate(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, "RE-202401-0005", invoices[0].InvoiceNumber)
	assert.Equal(t, 1, *invoices[0].CompanyID)
	assert.Equal(t, "50.50", invoices[0].TotalAmount)
	assert.Equal(t, models.InvoiceStatusCreated, invoices[0].Status)
	assert.Equal(t, "2024-01", invoices[0].MonthYear)
	assert.ElementsMatch(t, []int{1, 3}, store.linked["RE-202401-0005"])

	assert.Equal(t, "RE-202401-0006", invoices[1].InvoiceNumber)
	assert.Equal(t, 2, *invoices[1].CompanyID)
	assert.Equal(t, "10.00", invoices[1].TotalAmount)
	assert.Equal(t, []int{2}, store.linked["RE-202401-0006"])
}

func TestGenerateSkipsIneligibleJobs(t *testing.T) {
	jobs := &fakeJobLister{jobs: []*models.Job{
		testJob(1, intPtr(1), models.JobStatusOpen, "30", nil),
		testJob(2, intPtr(1), models.JobStatusCancelled, "30", nil),
		testJob(3, intPtr(1), models.JobStatusDone, "30", intPtr(99)),
		testJob(4, nil, models.JobStatusDone, "30", nil),
	}}
	store := newFakeInvoiceStore()
	counter := &fakeCounter{next: 1}
	svc := NewInvoiceService(jobs, store, counter)

	invoices, err := svc.Generate(context.Background(), "2024-01")
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.Zero(t, counter.calls, "no invoice number may be consumed when nothing is billed")
}

func TestGenerateSkipsZeroTotalGroupsWithoutBurningNumbers(t *testing.T) {
	jobs := &fakeJobLister{jobs: []*models.Job{
		testJob(1, intPtr(1), models.JobStatusDone, "0", nil),
		testJob(2, intPtr(1), models.JobStatusDone, "not-a-number", nil),
		testJob(3, intPtr(2), models.JobStatusDone, "75", nil),
	}}
	store := newFakeInvoiceStore()
	counter := &fakeCounter{next: 1}
	svc := NewInvoiceService(jobs, store, counter)

	invoices, err := svc.Generate(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "RE-202401-0001", invoices[0].InvoiceNumber)
	assert.Equal(t, 2, *invoices[0].CompanyID)
	assert.Equal(t, 1, counter.calls)
}

func TestGenerateOrdersGroupsByCompanyID(t *testing.T) {
	jobs := &fakeJobLister{jobs: []*models.Job{
		testJob(1, intPtr(3), models.JobStatusDone, "10", nil),
		testJob(2, intPtr(1), models.JobStatusDone, "10", nil),
		testJob(3, intPtr(2), models.JobStatusDone, "10", nil),
	}}
	store := newFakeInvoiceStore()
	counter := &fakeCounter{next: 1}
	svc := NewInvoiceService(jobs, store, counter)

	invoices, err := svc.Generate(context.Background(), "2024-03")
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, 1, *invoices[0].CompanyID)
	assert.Equal(t, 2, *invoices[1].CompanyID)
	assert.Equal(t, 3, *invoices[2].CompanyID)
	assert.Equal(t, "RE-202403-0001", invoices[0].InvoiceNumber)
	assert.Equal(t, "RE-202403-0002", invoices[1].InvoiceNumber)
	assert.Equal(t, "RE-202403-0003", invoices[2].InvoiceNumber)
}

func TestGenerateRerunOnlyBillsNewJobs(t *testing.T) {
	billed := testJob(1, intPtr(1), models.JobStatusDone, "30", nil)
	jobs := &fakeJobLister{jobs: []*models.Job{billed}}
	store := newFakeInvoiceStore()
	counter := &fakeCounter{next: 1}
	svc := NewInvoiceService(jobs, store, counter)

	first, err := svc.Generate(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Simulate the persisted link, then a newly completed job shows up
	billed.InvoiceID = &first[0].ID
	jobs.jobs = append(jobs.jobs, testJob(2, intPtr(1), models.JobStatusDone, "40", nil))

	second, err := svc.Generate(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "40.00", second[0].TotalAmount)
	assert.Equal(t, []int{2}, store.linked[second[0].InvoiceNumber])
}

func TestMarkPaidOverwritesUnconditionally(t *testing.T) {
	store := newFakeInvoiceStore()
	store.created = append(store.created, &models.Invoice{
		ID:            1,
		InvoiceNumber: "RE-202401-0001",
		Status:        models.InvoiceStatusCreated,
	})
	svc := NewInvoiceService(nil, store, nil)

	first := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	invoice, err := svc.MarkPaid(context.Background(), 1, first)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaidAt)
	assert.Equal(t, first, *invoice.PaidAt)

	// Paying an already-paid invoice just moves the timestamp
	second := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	invoice, err = svc.MarkPaid(context.Background(), 1, second)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, second, *invoice.PaidAt)
}

func TestMarkPaidUnknownInvoice(t *testing.T) {
	svc := NewInvoiceService(nil, newFakeInvoiceStore(), nil)

	_, err := svc.MarkPaid(context.Background(), 99, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "RE-202401-0001", FormatInvoiceNumber("2024-01", 1))
	assert.Equal(t, "RE-202512-0042", FormatInvoiceNumber("2025-12", 42))
	assert.Equal(t, "RE-202401-12345", FormatInvoiceNumber("2024-01", 12345))
}

func TestParseFee(t *testing.T) {
	assert.Equal(t, 50.5, ParseFee("50.50"))
	assert.Equal(t, 50.5, ParseFee(" 50.50 "))
	assert.Equal(t, 0.0, ParseFee(""))
	assert.Equal(t, 0.0, ParseFee("abc"))
	assert.Equal(t, 0.0, ParseFee("0"))
}

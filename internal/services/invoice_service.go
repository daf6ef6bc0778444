package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"referral-backend/internal/models"
	"referral-backend/internal/timeutil"
)

// JobMonthLister yields the jobs created in a given "YYYY-MM" month
type JobMonthLister interface {
	ListByMonth(ctx context.Context, monthYear string) ([]*models.Job, error)
}

// InvoiceStore is the persistence seam for invoices
type InvoiceStore interface {
	List(ctx context.Context) ([]*models.InvoiceWithCompany, error)
	CreateWithJobs(ctx context.Context, invoice *models.Invoice, jobIDs []int) error
	MarkPaid(ctx context.Context, id int, paidAt time.Time) (*models.Invoice, error)
	GetForPDF(ctx context.Context, id int) (*models.InvoiceForPDF, error)
}

// InvoiceNumberAllocator hands out the next invoice counter value atomically
type InvoiceNumberAllocator interface {
	AllocateInvoiceNumber(ctx context.Context) (int, error)
}

type InvoiceService struct {
	Jobs     JobMonthLister
	Invoices InvoiceStore
	Numbers  InvoiceNumberAllocator
}

func NewInvoiceService(jobs JobMonthLister, invoices InvoiceStore, numbers InvoiceNumberAllocator) *InvoiceService {
	return &InvoiceService{Jobs: jobs, Invoices: invoices, Numbers: numbers}
}

// Generate bills all completed, unbilled jobs created in the given month.
//
// Jobs are grouped by company; a group whose summed referral fees are zero
// yields no invoice and burns no number. Already-billed, open and cancelled
// jobs are silently skipped, so re-running for the same month only picks up
// jobs that became eligible since the previous run. Groups are processed in
// ascending company order, which makes number assignment deterministic.
func (s *InvoiceService) Generate(ctx context.Context, monthYear string) ([]*models.Invoice, error) {
	jobs, err := s.Jobs.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs for %s: %w", monthYear, err)
	}

	groups := make(map[int][]*models.Job)
	var companyIDs []int
	for _, job := range jobs {
		if job.Status != models.JobStatusDone || job.InvoiceID != nil || job.CompanyID == nil {
			continue
		}
		companyID := *job.CompanyID
		if _, ok := groups[companyID]; !ok {
			companyIDs = append(companyIDs, companyID)
		}
		groups[companyID] = append(groups[companyID], job)
	}
	sort.Ints(companyIDs)

	invoices := make([]*models.Invoice, 0, len(companyIDs))
	for _, companyID := range companyIDs {
		companyID := companyID // per-iteration copy; go directive is below 1.22
		group := groups[companyID]

		total := 0.0
		for _, job := range group {
			total += ParseFee(job.ReferralFee)
		}
		if total == 0 {
			continue
		}

		next, err := s.Numbers.AllocateInvoiceNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
		}

		invoice := &models.Invoice{
			InvoiceNumber: FormatInvoiceNumber(monthYear, next),
			Date:          timeutil.Now(),
			MonthYear:     monthYear,
			CompanyID:     &companyID,
			TotalAmount:   strconv.FormatFloat(total, 'f', 2, 64),
			Status:        models.InvoiceStatusCreated,
		}

		jobIDs := make([]int, 0, len(group))
		for _, job := range group {
			jobIDs = append(jobIDs, job.ID)
		}

		if err := s.Invoices.CreateWithJobs(ctx, invoice, jobIDs); err != nil {
			return nil, fmt.Errorf("failed to create invoice for company %d: %w", companyID, err)
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

// MarkPaid transitions an invoice to paid with the given timestamp,
// unconditionally overwriting any prior status
func (s *InvoiceService) MarkPaid(ctx context.Context, id int, paidAt time.Time) (*models.Invoice, error) {
	return s.Invoices.MarkPaid(ctx, id, paidAt)
}

// List returns all invoices with their company
func (s *InvoiceService) List(ctx context.Context) ([]*models.InvoiceWithCompany, error) {
	return s.Invoices.List(ctx)
}

// GetForPDF returns an invoice with everything the PDF export needs
func (s *InvoiceService) GetForPDF(ctx context.Context, id int) (*models.InvoiceForPDF, error) {
	return s.Invoices.GetForPDF(ctx, id)
}

// FormatInvoiceNumber builds the printed invoice number, e.g.
// "RE-202401-0001" for month "2024-01" and counter 1. The format is a
// compatibility contract with already-printed documents.
func FormatInvoiceNumber(monthYear string, n int) string {
	return fmt.Sprintf("RE-%s-%04d", strings.ReplaceAll(monthYear, "-", ""), n)
}

// ParseFee parses a referral fee stored as decimal text; missing or
// unparsable fees count as zero
func ParseFee(fee string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(fee), 64)
	if err != nil {
		return 0
	}
	return v
}

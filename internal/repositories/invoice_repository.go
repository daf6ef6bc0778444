package repositories

import (
	"context"
	"errors"
	"time"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool

	companies *CompanyRepository
	managers  *PropertyManagerRepository
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		DB:        db,
		companies: NewCompanyRepository(db),
		managers:  NewPropertyManagerRepository(db),
	}
}

const invoiceColumns = `id, invoice_number, date, month_year, company_id,
	total_amount::text, status, paid_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	inv := &models.Invoice{}
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.Date, &inv.MonthYear,
		&inv.CompanyID, &inv.TotalAmount, &inv.Status, &inv.PaidAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns all invoices with their company, newest first
func (r *InvoiceRepository) List(ctx context.Context) ([]*models.InvoiceWithCompany, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]*models.InvoiceWithCompany, 0, len(invoices))
	for _, inv := range invoices {
		iwc := &models.InvoiceWithCompany{Invoice: *inv}
		if inv.CompanyID != nil {
			c, err := r.companies.Get(ctx, *inv.CompanyID)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			iwc.Company = c
		}
		result = append(result, iwc)
	}

	return result, nil
}

// CreateWithJobs inserts the invoice and links all its jobs in a single
// transaction, so a partial failure can never leave a half-linked invoice.
func (r *InvoiceRepository) CreateWithJobs(ctx context.Context, invoice *models.Invoice, jobIDs []int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(invoice_number, date, month_year, company_id, total_amount, status)
		 VALUES($1, $2, $3, $4, $5::numeric, $6)
		 RETURNING id`,
		invoice.InvoiceNumber, invoice.Date, invoice.MonthYear, invoice.CompanyID,
		invoice.TotalAmount, invoice.Status,
	).Scan(&invoice.ID)
	if err != nil {
		return err
	}

	for _, jobID := range jobIDs {
		_, err = tx.Exec(ctx,
			`UPDATE jobs SET invoice_id = $1 WHERE id = $2`, invoice.ID, jobID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// MarkPaid sets the invoice to paid with the given timestamp, regardless of
// its prior status. Returns pgx.ErrNoRows for an unknown id.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id int, paidAt time.Time) (*models.Invoice, error) {
	return scanInvoice(r.DB.QueryRow(ctx,
		`UPDATE invoices SET status = $1, paid_at = $2 WHERE id = $3
		 RETURNING `+invoiceColumns,
		models.InvoiceStatusPaid, paidAt, id,
	))
}

// GetForPDF retrieves an invoice with its company and linked jobs (each
// with its property manager) for the PDF export
func (r *InvoiceRepository) GetForPDF(ctx context.Context, id int) (*models.InvoiceForPDF, error) {
	inv, err := scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	result := &models.InvoiceForPDF{Invoice: *inv}

	if inv.CompanyID != nil {
		c, err := r.companies.Get(ctx, *inv.CompanyID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		result.Company = c
	}

	rows, err := r.DB.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE invoice_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, j := range jobs {
		jwm := &models.JobWithManager{Job: *j}
		if j.PropertyManagerID != nil {
			pm, err := r.managers.Get(ctx, *j.PropertyManagerID)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			jwm.PropertyManager = pm
		}
		result.Jobs = append(result.Jobs, jwm)
	}

	return result, nil
}

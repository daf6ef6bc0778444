package repositories

import (
	"context"
	"errors"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	DB *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row, seeding it with defaults on first read
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	s := &models.Settings{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, company_name, address, email, website, next_invoice_number
		 FROM settings ORDER BY id LIMIT 1`,
	).Scan(&s.ID, &s.CompanyName, &s.Address, &s.Email, &s.Website, &s.NextInvoiceNumber)

	if errors.Is(err, pgx.ErrNoRows) {
		return r.seed(ctx)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SettingsRepository) seed(ctx context.Context) (*models.Settings, error) {
	s := &models.Settings{}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO settings DEFAULT VALUES
		 RETURNING id, company_name, address, email, website, next_invoice_number`,
	).Scan(&s.ID, &s.CompanyName, &s.Address, &s.Email, &s.Website, &s.NextInvoiceNumber)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update patches the singleton row; nil fields keep their current value
func (r *SettingsRepository) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	// Make sure the row exists before patching it
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	s := &models.Settings{}
	err := r.DB.QueryRow(ctx,
		`UPDATE settings SET
			company_name        = COALESCE($1, company_name),
			address             = COALESCE($2, address),
			email               = COALESCE($3, email),
			website             = COALESCE($4, website),
			next_invoice_number = COALESCE($5, next_invoice_number)
		 WHERE id = (SELECT id FROM settings ORDER BY id LIMIT 1)
		 RETURNING id, company_name, address, email, website, next_invoice_number`,
		req.CompanyName, req.Address, req.Email, req.Website, req.NextInvoiceNumber,
	).Scan(&s.ID, &s.CompanyName, &s.Address, &s.Email, &s.Website, &s.NextInvoiceNumber)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// AllocateInvoiceNumber atomically bumps the counter and returns the value
// it had before the bump. Concurrent callers serialize on the row lock, so
// a number is never handed out twice.
func (r *SettingsRepository) AllocateInvoiceNumber(ctx context.Context) (int, error) {
	// Make sure the row exists before incrementing
	if _, err := r.Get(ctx); err != nil {
		return 0, err
	}

	var next int
	err := r.DB.QueryRow(ctx,
		`UPDATE settings SET next_invoice_number = next_invoice_number + 1
		 WHERE id = (SELECT id FROM settings ORDER BY id LIMIT 1)
		 RETURNING next_invoice_number - 1`,
	).Scan(&next)
	if err != nil {
		return 0, err
	}

	return next, nil
}

package repositories

import (
	"context"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

const companyColumns = `id, name, contact_person, address, phone, email,
	COALESCE(tags, '{}'), vat_id, payment_terms_days, notes, is_active, created_at`

func scanCompany(row interface{ Scan(...any) error }) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Address, &c.Phone, &c.Email,
		&c.Tags, &c.VatID, &c.PaymentTermsDays, &c.Notes, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all companies, newest first
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// Get retrieves a company by ID
func (r *CompanyRepository) Get(ctx context.Context, id int) (*models.Company, error) {
	return scanCompany(r.DB.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id,
	))
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	return scanCompany(r.DB.QueryRow(ctx,
		`INSERT INTO companies(name, contact_person, address, phone, email, tags,
			vat_id, payment_terms_days, notes, is_active)
		 VALUES($1, $2, $3, $4, $5, $6, $7, COALESCE($8, 14), $9, COALESCE($10, TRUE))
		 RETURNING `+companyColumns,
		req.Name, req.ContactPerson, req.Address, req.Phone, req.Email, req.Tags,
		req.VatID, req.PaymentTermsDays, req.Notes, req.IsActive,
	))
}

// Update patches a company; nil fields keep their current value
func (r *CompanyRepository) Update(ctx context.Context, id int, req *models.UpdateCompanyRequest) (*models.Company, error) {
	return scanCompany(r.DB.QueryRow(ctx,
		`UPDATE companies SET
			name               = COALESCE($1, name),
			contact_person     = COALESCE($2, contact_person),
			address            = COALESCE($3, address),
			phone              = COALESCE($4, phone),
			email              = COALESCE($5, email),
			tags               = COALESCE($6, tags),
			vat_id             = COALESCE($7, vat_id),
			payment_terms_days = COALESCE($8, payment_terms_days),
			notes              = COALESCE($9, notes),
			is_active          = COALESCE($10, is_active)
		 WHERE id = $11
		 RETURNING `+companyColumns,
		req.Name, req.ContactPerson, req.Address, req.Phone, req.Email, req.Tags,
		req.VatID, req.PaymentTermsDays, req.Notes, req.IsActive, id,
	))
}

// Delete removes a company
func (r *CompanyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

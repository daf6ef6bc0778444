package repositories

import (
	"context"
	"errors"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	DB *pgxpool.Pool

	companies *CompanyRepository
	managers  *PropertyManagerRepository
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		DB:        db,
		companies: NewCompanyRepository(db),
		managers:  NewPropertyManagerRepository(db),
	}
}

const jobColumns = `id, job_number, created_at, property_manager_id, company_id,
	location_address, trade, description, status, referral_fee::text,
	internal_notes, invoice_id`

func scanJob(row interface{ Scan(...any) error }) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(&j.ID, &j.JobNumber, &j.CreatedAt, &j.PropertyManagerID, &j.CompanyID,
		&j.LocationAddress, &j.Trade, &j.Description, &j.Status, &j.ReferralFee,
		&j.InternalNotes, &j.InvoiceID)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// List returns all jobs with their company and property manager, newest first
func (r *JobRepository) List(ctx context.Context) ([]*models.JobWithRelations, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`,
	)
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

	companies, managers, err := r.relatedRows(ctx, jobs)
	if err != nil {
		return nil, err
	}

	result := make([]*models.JobWithRelations, 0, len(jobs))
	for _, j := range jobs {
		jr := &models.JobWithRelations{Job: *j}
		if j.CompanyID != nil {
			jr.Company = companies[*j.CompanyID]
		}
		if j.PropertyManagerID != nil {
			jr.PropertyManager = managers[*j.PropertyManagerID]
		}
		result = append(result, jr)
	}

	return result, nil
}

// relatedRows batch-fetches the companies and property managers referenced
// by the given jobs
func (r *JobRepository) relatedRows(ctx context.Context, jobs []*models.Job) (map[int]*models.Company, map[int]*models.PropertyManager, error) {
	companyIDs := make([]int, 0, len(jobs))
	managerIDs := make([]int, 0, len(jobs))
	seenCompany := make(map[int]bool)
	seenManager := make(map[int]bool)
	for _, j := range jobs {
		if j.CompanyID != nil && !seenCompany[*j.CompanyID] {
			seenCompany[*j.CompanyID] = true
			companyIDs = append(companyIDs, *j.CompanyID)
		}
		if j.PropertyManagerID != nil && !seenManager[*j.PropertyManagerID] {
			seenManager[*j.PropertyManagerID] = true
			managerIDs = append(managerIDs, *j.PropertyManagerID)
		}
	}

	companies := make(map[int]*models.Company)
	if len(companyIDs) > 0 {
		rows, err := r.DB.Query(ctx,
			`SELECT `+companyColumns+` FROM companies WHERE id = ANY($1)`, companyIDs)
		if err != nil {
			return nil, nil, err
		}
		defer rows.Close()
		for rows.Next() {
			c, err := scanCompany(rows)
			if err != nil {
				return nil, nil, err
			}
			companies[c.ID] = c
		}
		if err := rows.Err(); err != nil {
			return nil, nil, err
		}
	}

	managers := make(map[int]*models.PropertyManager)
	if len(managerIDs) > 0 {
		rows, err := r.DB.Query(ctx,
			`SELECT id, name, address, phone, email, notes, created_at
			 FROM property_managers WHERE id = ANY($1)`, managerIDs)
		if err != nil {
			return nil, nil, err
		}
		defer rows.Close()
		for rows.Next() {
			pm := &models.PropertyManager{}
			err := rows.Scan(&pm.ID, &pm.Name, &pm.Address, &pm.Phone, &pm.Email, &pm.Notes, &pm.CreatedAt)
			if err != nil {
				return nil, nil, err
			}
			managers[pm.ID] = pm
		}
		if err := rows.Err(); err != nil {
			return nil, nil, err
		}
	}

	return companies, managers, nil
}

// Get retrieves a job by ID together with its report if one exists
func (r *JobRepository) Get(ctx context.Context, id int) (*models.JobWithReport, error) {
	j, err := scanJob(r.DB.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	result := &models.JobWithReport{Job: *j}

	report := &models.JobReport{}
	err = r.DB.QueryRow(ctx,
		`SELECT id, job_id, steps, times, material, result, photos_url
		 FROM job_reports WHERE job_id = $1`, id,
	).Scan(&report.ID, &report.JobID, &report.Steps, &report.Times,
		&report.Material, &report.Result, &report.PhotosURL)
	if err == nil {
		result.Report = report
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return result, nil
}

// GetForPDF retrieves a job with everything the job sheet export needs
func (r *JobRepository) GetForPDF(ctx context.Context, id int) (*models.JobForPDF, error) {
	withReport, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.JobForPDF{Job: withReport.Job, Report: withReport.Report}

	if withReport.CompanyID != nil {
		c, err := r.companies.Get(ctx, *withReport.CompanyID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		result.Company = c
	}
	if withReport.PropertyManagerID != nil {
		pm, err := r.managers.Get(ctx, *withReport.PropertyManagerID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		result.PropertyManager = pm
	}

	return result, nil
}

// Create inserts a new job with the server-assigned job number
func (r *JobRepository) Create(ctx context.Context, jobNumber string, req *models.CreateJobRequest) (*models.Job, error) {
	return scanJob(r.DB.QueryRow(ctx,
		`INSERT INTO jobs(job_number, property_manager_id, company_id, location_address,
			trade, description, status, referral_fee, internal_notes)
		 VALUES($1, $2, $3, $4, $5, $6, COALESCE($7, 'open'),
			COALESCE($8, '0')::numeric, $9)
		 RETURNING `+jobColumns,
		jobNumber, req.PropertyManagerID, req.CompanyID, req.LocationAddress,
		req.Trade, req.Description, req.Status, req.ReferralFee, req.InternalNotes,
	))
}

// Update patches a job; nil fields keep their current value. The invoice
// link is deliberately not touchable here - it is set once by invoice
// generation and never reset.
func (r *JobRepository) Update(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	return scanJob(r.DB.QueryRow(ctx,
		`UPDATE jobs SET
			property_manager_id = COALESCE($1, property_manager_id),
			company_id          = COALESCE($2, company_id),
			location_address    = COALESCE($3, location_address),
			trade               = COALESCE($4, trade),
			description         = COALESCE($5, description),
			status              = COALESCE($6, status),
			referral_fee        = COALESCE($7::numeric, referral_fee),
			internal_notes      = COALESCE($8, internal_notes)
		 WHERE id = $9
		 RETURNING `+jobColumns,
		req.PropertyManagerID, req.CompanyID, req.LocationAddress, req.Trade,
		req.Description, req.Status, req.ReferralFee, req.InternalNotes, id,
	))
}

// ListByMonth returns all jobs whose creation timestamp falls in the given
// "YYYY-MM" month. A malformed month simply matches nothing.
func (r *JobRepository) ListByMonth(ctx context.Context, monthYear string) ([]*models.Job, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE TO_CHAR(created_at, 'YYYY-MM') = $1`, monthYear,
	)
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

	return jobs, rows.Err()
}

package repositories

import (
	"context"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type JobReportRepository struct {
	DB *pgxpool.Pool
}

func NewJobReportRepository(db *pgxpool.Pool) *JobReportRepository {
	return &JobReportRepository{DB: db}
}

// Upsert creates the job's report on first save and patches it afterwards.
// The unique job_id constraint keeps the relation at 0:1 by construction.
func (r *JobReportRepository) Upsert(ctx context.Context, jobID int, req *models.UpsertJobReportRequest) (*models.JobReport, error) {
	report := &models.JobReport{}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO job_reports(job_id, steps, times, material, result, photos_url)
		 VALUES($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (job_id) DO UPDATE SET
			steps      = COALESCE(EXCLUDED.steps, job_reports.steps),
			times      = COALESCE(EXCLUDED.times, job_reports.times),
			material   = COALESCE(EXCLUDED.material, job_reports.material),
			result     = COALESCE(EXCLUDED.result, job_reports.result),
			photos_url = COALESCE(EXCLUDED.photos_url, job_reports.photos_url)
		 RETURNING id, job_id, steps, times, material, result, photos_url`,
		jobID, req.Steps, req.Times, req.Material, req.Result, req.PhotosURL,
	).Scan(&report.ID, &report.JobID, &report.Steps, &report.Times,
		&report.Material, &report.Result, &report.PhotosURL)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// GetByJobID retrieves the report for a job
func (r *JobReportRepository) GetByJobID(ctx context.Context, jobID int) (*models.JobReport, error) {
	report := &models.JobReport{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, job_id, steps, times, material, result, photos_url
		 FROM job_reports WHERE job_id = $1`, jobID,
	).Scan(&report.ID, &report.JobID, &report.Steps, &report.Times,
		&report.Material, &report.Result, &report.PhotosURL)
	if err != nil {
		return nil, err
	}

	return report, nil
}

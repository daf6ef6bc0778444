package services

import (
	"context"
	"fmt"

	"referral-backend/internal/models"
	"referral-backend/internal/timeutil"
)

// JobStore is the persistence seam for jobs
type JobStore interface {
	List(ctx context.Context) ([]*models.JobWithRelations, error)
	Get(ctx context.Context, id int) (*models.JobWithReport, error)
	GetForPDF(ctx context.Context, id int) (*models.JobForPDF, error)
	Create(ctx context.Context, jobNumber string, req *models.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error)
}

// JobReportStore is the persistence seam for job reports
type JobReportStore interface {
	Upsert(ctx context.Context, jobID int, req *models.UpsertJobReportRequest) (*models.JobReport, error)
}

type JobService struct {
	Jobs    JobStore
	Reports JobReportStore
}

func NewJobService(jobs JobStore, reports JobReportStore) *JobService {
	return &JobService{Jobs: jobs, Reports: reports}
}

func (s *JobService) List(ctx context.Context) ([]*models.JobWithRelations, error) {
	return s.Jobs.List(ctx)
}

func (s *JobService) Get(ctx context.Context, id int) (*models.JobWithReport, error) {
	return s.Jobs.Get(ctx, id)
}

func (s *JobService) GetForPDF(ctx context.Context, id int) (*models.JobForPDF, error) {
	return s.Jobs.GetForPDF(ctx, id)
}

// Create assigns the job number server-side and inserts the job
func (s *JobService) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	return s.Jobs.Create(ctx, NewJobNumber(), req)
}

func (s *JobService) Update(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	return s.Jobs.Update(ctx, id, req)
}

// UpsertReport creates or patches the report attached to a job
func (s *JobService) UpsertReport(ctx context.Context, jobID int, req *models.UpsertJobReportRequest) (*models.JobReport, error) {
	return s.Reports.Upsert(ctx, jobID, req)
}

// NewJobNumber mints a display number like "NP24-831274" from the trailing
// digits of the current millisecond timestamp. Collisions are practically
// impossible at back-office intake rates and rejected by the unique column
// if they ever happen.
func NewJobNumber() string {
	return fmt.Sprintf("NP24-%06d", timeutil.Now().UnixMilli()%1000000)
}

package models

// JobReport is the field-completion record for a job (Einsatzprotokoll).
// At most one report exists per job; it is created lazily on first save.
type JobReport struct {
	ID        int     `json:"id"`
	JobID     int     `json:"job_id"`
	Steps     *string `json:"steps"`
	Times     *string `json:"times"`
	Material  *string `json:"material"`
	Result    *string `json:"result"`
	PhotosURL *string `json:"photos_url"`
}

// UpsertJobReportRequest represents the report form for a job
type UpsertJobReportRequest struct {
	Steps     *string `json:"steps"`
	Times     *string `json:"times"`
	Material  *string `json:"material"`
	Result    *string `json:"result"`
	PhotosURL *string `json:"photos_url"`
}

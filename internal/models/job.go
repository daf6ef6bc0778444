package models

import "time"

// Job status values. Stored as free-form text with no transition guard,
// matching the dialog-driven workflow (done can move back to open).
const (
	JobStatusOpen      = "open"
	JobStatusDone      = "done"
	JobStatusCancelled = "cancelled"
)

// Job represents a single referral engagement (Vermittlungsauftrag)
type Job struct {
	ID                int       `json:"id"`
	JobNumber         string    `json:"job_number"`
	CreatedAt         time.Time `json:"created_at"`
	PropertyManagerID *int      `json:"property_manager_id"`
	CompanyID         *int      `json:"company_id"`
	LocationAddress   string    `json:"location_address"`
	Trade             string    `json:"trade"`
	Description       *string   `json:"description"`
	Status            string    `json:"status"`
	ReferralFee       string    `json:"referral_fee"`
	InternalNotes     *string   `json:"internal_notes"`
	InvoiceID         *int      `json:"invoice_id"`
}

// JobWithRelations includes the joined company and property manager rows
type JobWithRelations struct {
	Job
	Company         *Company         `json:"company"`
	PropertyManager *PropertyManager `json:"property_manager"`
}

// JobWithReport includes the job's report if one exists
type JobWithReport struct {
	Job
	Report *JobReport `json:"report"`
}

// JobForPDF carries everything the job sheet export needs
type JobForPDF struct {
	Job
	Company         *Company         `json:"company"`
	PropertyManager *PropertyManager `json:"property_manager"`
	Report          *JobReport       `json:"report"`
}

// CreateJobRequest represents the job intake form. The job number is
// assigned by the server, never by the caller.
type CreateJobRequest struct {
	PropertyManagerID *int    `json:"property_manager_id"`
	CompanyID         *int    `json:"company_id"`
	LocationAddress   string  `json:"location_address"`
	Trade             string  `json:"trade"`
	Description       *string `json:"description"`
	Status            *string `json:"status"`
	ReferralFee       *string `json:"referral_fee"`
	InternalNotes     *string `json:"internal_notes"`
}

// UpdateJobRequest is a partial update; nil fields are left unchanged.
// The invoice link is never writable through this request.
type UpdateJobRequest struct {
	PropertyManagerID *int    `json:"property_manager_id"`
	CompanyID         *int    `json:"company_id"`
	LocationAddress   *string `json:"location_address"`
	Trade             *string `json:"trade"`
	Description       *string `json:"description"`
	Status            *string `json:"status"`
	ReferralFee       *string `json:"referral_fee"`
	InternalNotes     *string `json:"internal_notes"`
}

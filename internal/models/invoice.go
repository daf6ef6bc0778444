package models

import "time"

// Invoice status values
const (
	InvoiceStatusCreated = "created"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
)

// Invoice represents a monthly billing document for one company
type Invoice struct {
	ID            int        `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          time.Time  `json:"date"`
	MonthYear     string     `json:"month_year"`
	CompanyID     *int       `json:"company_id"`
	TotalAmount   string     `json:"total_amount"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at"`
}

// InvoiceWithCompany includes the joined company row
type InvoiceWithCompany struct {
	Invoice
	Company *Company `json:"company"`
}

// JobWithManager is an invoice line item with its property manager
type JobWithManager struct {
	Job
	PropertyManager *PropertyManager `json:"property_manager"`
}

// InvoiceForPDF carries everything the invoice export needs
type InvoiceForPDF struct {
	Invoice
	Company *Company          `json:"company"`
	Jobs    []*JobWithManager `json:"jobs"`
}

// GenerateInvoicesRequest represents the request to bill a month
type GenerateInvoicesRequest struct {
	MonthYear string `json:"month_year"`
}

// PayInvoiceRequest represents the request to mark an invoice paid
type PayInvoiceRequest struct {
	PaidAt time.Time `json:"paid_at"`
}

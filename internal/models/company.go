package models

import "time"

// Company represents a partner service provider (Notdienst-Partner)
type Company struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	ContactPerson    *string   `json:"contact_person"`
	Address          string    `json:"address"`
	Phone            *string   `json:"phone"`
	Email            *string   `json:"email"`
	Tags             []string  `json:"tags"`
	VatID            *string   `json:"vat_id"`
	PaymentTermsDays int       `json:"payment_terms_days"`
	Notes            *string   `json:"notes"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name             string   `json:"name"`
	ContactPerson    *string  `json:"contact_person"`
	Address          string   `json:"address"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Tags             []string `json:"tags"`
	VatID            *string  `json:"vat_id"`
	PaymentTermsDays *int     `json:"payment_terms_days"`
	Notes            *string  `json:"notes"`
	IsActive         *bool    `json:"is_active"`
}

// UpdateCompanyRequest is a partial update; nil fields are left unchanged
type UpdateCompanyRequest struct {
	Name             *string  `json:"name"`
	ContactPerson    *string  `json:"contact_person"`
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Tags             []string `json:"tags"`
	VatID            *string  `json:"vat_id"`
	PaymentTermsDays *int     `json:"payment_terms_days"`
	Notes            *string  `json:"notes"`
	IsActive         *bool    `json:"is_active"`
}

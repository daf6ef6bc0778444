package models

// Settings is the singleton operator profile plus the invoice number counter
type Settings struct {
	ID                int    `json:"id"`
	CompanyName       string `json:"company_name"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	Website           string `json:"website"`
	NextInvoiceNumber int    `json:"next_invoice_number"`
}

// UpdateSettingsRequest represents the settings form
type UpdateSettingsRequest struct {
	CompanyName       *string `json:"company_name"`
	Address           *string `json:"address"`
	Email             *string `json:"email"`
	Website           *string `json:"website"`
	NextInvoiceNumber *int    `json:"next_invoice_number"`
}

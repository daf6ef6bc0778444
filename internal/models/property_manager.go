package models

import "time"

// PropertyManager represents a Hausverwaltung that requests referral jobs
type PropertyManager struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePropertyManagerRequest represents the request to create a property manager
type CreatePropertyManagerRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Notes   *string `json:"notes"`
}

// UpdatePropertyManagerRequest is a partial update; nil fields are left unchanged
type UpdatePropertyManagerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Notes   *string `json:"notes"`
}

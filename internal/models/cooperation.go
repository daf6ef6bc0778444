package models

// Cooperation is an active partnership edge between a company and a property manager.
// Uniqueness is defined by the (company_id, property_manager_id) pair.
type Cooperation struct {
	ID                int `json:"id"`
	CompanyID         int `json:"company_id"`
	PropertyManagerID int `json:"property_manager_id"`
}

// ToggleCooperationRequest represents the request to flip a cooperation edge
type ToggleCooperationRequest struct {
	CompanyID         int `json:"company_id"`
	PropertyManagerID int `json:"property_manager_id"`
}

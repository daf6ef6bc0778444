package models

// LoginRequest represents the admin login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued session token
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"referral-backend/internal/auth"
	"referral-backend/internal/config"
	"referral-backend/internal/middleware"
	"referral-backend/internal/models"
	"referral-backend/pkg/utils"
)

// AuthHandler authenticates the single shared admin login against the
// configured credentials. There is no user table.
type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

// Login handles admin authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !h.credentialsValid(req.Email, req.Password) {
		log.Printf("[Auth] Failed login attempt for %q", req.Email)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.jwtManager.GenerateToken(req.Email)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, &models.AuthResponse{Token: token, Email: req.Email})
}

// Logout exists for client symmetry. Tokens are stateless, so there is
// nothing to revoke server-side; the client drops its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CurrentUser returns the authenticated admin identity
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"email": email})
}

func (h *AuthHandler) credentialsValid(email, password string) bool {
	if !auth.ConstantTimeEquals(email, h.cfg.Admin.Email) {
		return false
	}
	if h.cfg.Admin.PasswordHash != "" {
		return auth.VerifyPassword(h.cfg.Admin.PasswordHash, password)
	}
	return auth.ConstantTimeEquals(password, h.cfg.Admin.Password)
}

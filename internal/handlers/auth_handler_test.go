package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"referral-backend/internal/auth"
	"referral-backend/internal/config"
	"referral-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdminConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "referral-backend"
	cfg.Admin.Email = "admin@notprofi24.at"
	cfg.Admin.Password = "correct-horse"
	return cfg
}

func postLogin(t *testing.T, h *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	cfg := testAdminConfig()
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	rec := postLogin(t, h, models.LoginRequest{
		Email:    "admin@notprofi24.at",
		Password: "correct-horse",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@notprofi24.at", resp.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	cfg := testAdminConfig()
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	rec := postLogin(t, h, models.LoginRequest{
		Email:    "admin@notprofi24.at",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	cfg := testAdminConfig()
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	rec := postLogin(t, h, models.LoginRequest{
		Email:    "someone@example.com",
		Password: "correct-horse",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginVerifiesAgainstConfiguredHash(t *testing.T) {
	cfg := testAdminConfig()
	cfg.Admin.Password = ""
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	cfg.Admin.PasswordHash = hash

	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	rec := postLogin(t, h, models.LoginRequest{
		Email:    "admin@notprofi24.at",
		Password: "correct-horse",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postLogin(t, h, models.LoginRequest{
		Email:    "admin@notprofi24.at",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	cfg := testAdminConfig()
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

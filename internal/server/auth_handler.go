// Package server provides the HTTP REST API for contractor intake.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/contractor-intake/internal/config"
	"github.com/jonathan/contractor-intake/internal/types"
)

// AuthHandler handles authentication-related HTTP requests. The intake
// service has a single admin account configured via environment, so login
// checks credentials against the configured email and bcrypt hash rather
// than a users table.
type AuthHandler struct {
	adminEmail        string
	adminPasswordHash string
	passwords         *config.PasswordConfig
	jwtService        *JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(adminEmail, adminPasswordHash string, passwords *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		passwords:         passwords,
		jwtService:        jwtService,
	}
}

// Login handles admin login requests and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.adminEmail == "" || h.adminPasswordHash == "" {
		http.Error(w, "Login is not configured", http.StatusServiceUnavailable)
		return
	}

	// Same response for wrong email and wrong password.
	if !strings.EqualFold(req.Email, h.adminEmail) ||
		!h.passwords.VerifyPassword(req.Password, h.adminPasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.jwtService.GenerateToken(h.adminEmail)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := types.LoginResponse{Token: token}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Response already sent
		return
	}
}

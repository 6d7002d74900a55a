package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/auth"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/config"
)

type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the operator credential and issues a JWT. Single-operator
// setup: the credential pair lives in config.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username != h.cfg.Auth.Username || !auth.VerifyPassword(h.cfg.Auth.Password, req.Password) {
		log.Printf("[Auth] Failed login attempt for %q", req.Username)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

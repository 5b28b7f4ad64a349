package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"notes-app/service"
)

type AuthHandler struct {
	Auth *service.AuthService
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return &service.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(password) < 6 {
		return &service.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		respondServiceError(w, err)
		return
	}

	if _, err := h.Auth.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	signed, user, err := h.Auth.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token": signed,
		"user":  user,
	})
}

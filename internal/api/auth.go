// ABOUTME: HTTP handlers for signup, login, and the authenticated profile
// ABOUTME: Maps credential service errors to wire statuses and messages

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2389/roster/internal/account"
	"github.com/2389/roster/internal/auth"
	"github.com/2389/roster/internal/schema"
	"github.com/2389/roster/internal/store"
)

// LoginRequest is the JSON request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"emailid"`
	Password string `json:"password"`
}

// SignupResponse is the JSON response for a successful registration.
type SignupResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Token   string `json:"token"`
}

// LoginResponse is the JSON response for a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileResponse wraps the authenticated principal, hash omitted.
type ProfileResponse struct {
	User PrincipalInfo `json:"user"`
}

// PrincipalInfo is the client-visible projection of a principal.
type PrincipalInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"emailid"`
	DateOfBirth   string `json:"dateofbirth,omitempty"`
	DateOfJoining string `json:"dateofjoining,omitempty"`
}

// handleSignup handles POST /api/auth/signup.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var params account.RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.sendMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.accounts.Register(r.Context(), params)
	if err != nil {
		var violation *schema.Violation
		switch {
		case errors.As(err, &violation):
			s.sendMessage(w, http.StatusBadRequest, violation.Message)
		case errors.Is(err, account.ErrDuplicateAccount):
			s.sendMessage(w, http.StatusBadRequest, "User already exists")
		default:
			s.sendStoreError(w, "Error registering user", err)
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, SignupResponse{
		Message: "User registered successfully",
		ID:      result.PrincipalID,
		Token:   result.Token,
	})
}

// handleLogin handles POST /api/auth/login. Unknown email and wrong
// password produce byte-identical responses.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			s.sendMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		s.sendStoreError(w, "Error logging in", err)
		return
	}

	s.writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// handleProfile handles GET /api/auth/profile. The access guard has already
// verified the token; this handler resolves the subject to a principal.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	identity := auth.FromContext(r.Context())
	if identity == nil {
		s.sendMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	principal, err := s.accounts.Profile(r.Context(), identity.PrincipalID)
	if err != nil {
		if errors.Is(err, store.ErrPrincipalNotFound) {
			s.sendMessage(w, http.StatusNotFound, "User not found")
			return
		}
		s.sendStoreError(w, "Error retrieving user data", err)
		return
	}

	s.writeJSON(w, http.StatusOK, ProfileResponse{
		User: PrincipalInfo{
			ID:            principal.ID,
			Name:          principal.Name,
			Email:         principal.Email,
			DateOfBirth:   principal.DateOfBirth,
			DateOfJoining: principal.DateOfJoining,
		},
	})
}

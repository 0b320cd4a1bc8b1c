// ABOUTME: HTTP handlers for employee record CRUD
// ABOUTME: Validation rejections return 400 with the first violation message

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2389/roster/internal/employee"
	"github.com/2389/roster/internal/schema"
	"github.com/2389/roster/internal/store"
)

// EmployeeResponse is the JSON response for create and update operations.
type EmployeeResponse struct {
	Message string          `json:"message"`
	User    *store.Employee `json:"user"`
}

// handleEmployees handles /api/users: POST creates, GET lists.
func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateEmployee(w, r)
	case http.MethodGet:
		s.handleListEmployees(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleEmployeeByID handles /api/users/{id}: GET, PUT, DELETE.
func (s *Server) handleEmployeeByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/users/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleGetEmployee(w, r, id)
	case http.MethodPut:
		s.handleUpdateEmployee(w, r, id)
	case http.MethodDelete:
		s.handleDeleteEmployee(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}

	created, err := s.employees.Create(r.Context(), rec)
	if err != nil {
		var violation *schema.Violation
		if errors.As(err, &violation) {
			s.sendMessage(w, http.StatusBadRequest, violation.Message)
			return
		}
		s.sendStoreError(w, "Error saving user data", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, EmployeeResponse{
		Message: "User added successfully!",
		User:    created,
	})
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.employees.List(r.Context())
	if err != nil {
		s.sendStoreError(w, "Error retrieving users", err)
		return
	}

	// An empty store serializes as [], not null.
	if employees == nil {
		employees = []*store.Employee{}
	}

	s.writeJSON(w, http.StatusOK, employees)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request, id string) {
	e, err := s.employees.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrInvalidID):
			s.sendMessage(w, http.StatusBadRequest, "Invalid user ID")
		case errors.Is(err, store.ErrEmployeeNotFound):
			s.sendMessage(w, http.StatusNotFound, "User not found")
		default:
			s.sendStoreError(w, "Error retrieving user data", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request, id string) {
	rec, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}

	updated, err := s.employees.Update(r.Context(), id, rec)
	if err != nil {
		var violation *schema.Violation
		switch {
		case errors.Is(err, employee.ErrInvalidID):
			s.sendMessage(w, http.StatusBadRequest, "Invalid user ID")
		case errors.As(err, &violation):
			s.sendMessage(w, http.StatusBadRequest, violation.Message)
		case errors.Is(err, store.ErrEmployeeNotFound):
			s.sendMessage(w, http.StatusNotFound, "User not found")
		default:
			s.sendStoreError(w, "Error updating user", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, EmployeeResponse{
		Message: "User updated!",
		User:    updated,
	})
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.employees.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, employee.ErrInvalidID):
			s.sendMessage(w, http.StatusBadRequest, "Invalid user ID")
		case errors.Is(err, store.ErrEmployeeNotFound):
			s.sendMessage(w, http.StatusNotFound, "User not found")
		default:
			s.sendStoreError(w, "Error deleting user", err)
		}
		return
	}

	s.sendMessage(w, http.StatusOK, "User deleted!")
}

// decodeRecord decodes a JSON object body, reporting a 400 on failure.
func (s *Server) decodeRecord(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		s.sendMessage(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return rec, true
}

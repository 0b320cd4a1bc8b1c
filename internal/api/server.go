// ABOUTME: HTTP server assembly for roster: routes, middleware, lifecycle
// ABOUTME: Mounts auth and employee handlers and handles graceful shutdown

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/roster/internal/account"
	"github.com/2389/roster/internal/auth"
	"github.com/2389/roster/internal/config"
	"github.com/2389/roster/internal/employee"
	"github.com/2389/roster/internal/store"
)

// Server hosts the HTTP API.
type Server struct {
	cfg       *config.Config
	accounts  *account.Service
	employees *employee.Service
	verifier  auth.TokenVerifier
	logger    *slog.Logger
}

// New assembles the API server from its collaborators. The JWT secret and
// token TTL come from cfg and are shared by the credential service and the
// access guard.
func New(cfg *config.Config, st *store.SQLiteStore, logger *slog.Logger) *Server {
	verifier := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))

	return &Server{
		cfg:       cfg,
		accounts:  account.NewService(st, verifier, cfg.Auth.TokenTTL, logger),
		employees: employee.NewService(st, logger),
		verifier:  verifier,
		logger:    logger.With("component", "api"),
	}
}

// Handler builds the route table. Employee and profile routes sit behind
// the access guard; signup, login, and health do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	guard := auth.Middleware(s.verifier)

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/auth/signup", s.handleSignup)
	mux.HandleFunc("/api/auth/login", s.handleLogin)
	mux.Handle("/api/auth/profile", guard(http.HandlerFunc(s.handleProfile)))
	mux.Handle("/api/users", guard(http.HandlerFunc(s.handleEmployees)))
	mux.Handle("/api/users/", guard(http.HandlerFunc(s.handleEmployeeByID)))

	return mux
}

// Run serves the API until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Server.HTTPAddr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// sendMessage writes a {"message": ...} body.
func (s *Server) sendMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"message": message})
}

// sendStoreError writes a {"message", "error"} body for a store-layer
// failure: generic message for the client, underlying cause preserved.
func (s *Server) sendStoreError(w http.ResponseWriter, message string, err error) {
	s.logger.Error(message, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"message": message,
		"error":   err.Error(),
	})
}

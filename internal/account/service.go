// ABOUTME: Credential service handling registration, login, and profile lookup
// ABOUTME: Hashes passwords with bcrypt and issues signed session tokens

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2389/roster/internal/auth"
	"github.com/2389/roster/internal/store"
)

// ErrDuplicateAccount is returned when registering an email that is already
// taken.
var ErrDuplicateAccount = errors.New("user already exists")

// ErrInvalidCredentials is returned for any login failure. An unknown email
// and a wrong password produce this same value so responses cannot be used
// to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// dummyHash is compared against when the email is unknown, keeping the
// login path's timing independent of account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service implements the credential lifecycle over a principal store.
type Service struct {
	principals store.PrincipalStore
	tokens     auth.TokenIssuer
	tokenTTL   time.Duration
	logger     *slog.Logger
}

// NewService creates a credential service. tokenTTL bounds the lifetime of
// every token the service issues.
func NewService(principals store.PrincipalStore, tokens auth.TokenIssuer, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		principals: principals,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
		logger:     logger.With("component", "account"),
	}
}

// RegisterParams carries the raw signup input. Date fields are optional and
// validated as dates when present.
type RegisterParams struct {
	Name          string `json:"name"`
	Email         string `json:"emailid"`
	Password      string `json:"password"`
	DateOfBirth   string `json:"dateofbirth"`
	DateOfJoining string `json:"dateofjoining"`
}

// record converts the params to a validation record. Empty optional values
// are left out so they read as absent to the schema.
func (p RegisterParams) record() map[string]any {
	rec := make(map[string]any)
	if p.Name != "" {
		rec["name"] = p.Name
	}
	if p.Email != "" {
		rec["emailid"] = p.Email
	}
	if p.Password != "" {
		rec["password"] = p.Password
	}
	if p.DateOfBirth != "" {
		rec["dateofbirth"] = p.DateOfBirth
	}
	if p.DateOfJoining != "" {
		rec["dateofjoining"] = p.DateOfJoining
	}
	return rec
}

// RegisterResult is the outcome of a successful registration.
type RegisterResult struct {
	PrincipalID string
	Token       string
}

// Register validates the input, persists a new principal with a hashed
// password, and issues a token whose subject is the new principal's ID.
// The raw password is discarded after hashing.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*RegisterResult, error) {
	if err := credentialSchema.Validate(params.record()); err != nil {
		return nil, err
	}

	_, err := s.principals.GetPrincipalByEmail(ctx, params.Email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	principal := &store.Principal{
		ID:            uuid.NewString(),
		Name:          params.Name,
		Email:         params.Email,
		PasswordHash:  string(hash),
		DateOfBirth:   params.DateOfBirth,
		DateOfJoining: params.DateOfJoining,
		CreatedAt:     time.Now(),
	}

	if err := s.principals.CreatePrincipal(ctx, principal); err != nil {
		// The unique index catches a concurrent registration that slipped
		// past the lookup above.
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("creating principal: %w", err)
	}

	token, err := s.tokens.Generate(principal.ID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("registered principal", "id", principal.ID, "email", principal.Email)

	return &RegisterResult{PrincipalID: principal.ID, Token: token}, nil
}

// Login verifies the credentials and issues a token for the matched
// principal. Unknown email and wrong password both return
// ErrInvalidCredentials; the unknown-email branch still performs a bcrypt
// comparison against a dummy hash to keep timing constant.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	principal, err := s.principals.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrPrincipalNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(principal.ID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("login successful", "id", principal.ID)

	return token, nil
}

// Profile returns the principal for an authenticated identity.
func (s *Service) Profile(ctx context.Context, principalID string) (*store.Principal, error) {
	return s.principals.GetPrincipal(ctx, principalID)
}

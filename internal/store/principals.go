// ABOUTME: Principal store methods for the SQLite store
// ABOUTME: Covers create and lookup by id or email with unique-email enforcement

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreatePrincipal inserts a new principal. Returns ErrEmailExists if a
// principal with the same email is already registered.
func (s *SQLiteStore) CreatePrincipal(ctx context.Context, p *Principal) error {
	query := `
		INSERT INTO principals (id, name, email, password_hash, date_of_birth, date_of_joining, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.PasswordHash,
		nullableString(p.DateOfBirth),
		nullableString(p.DateOfJoining),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting principal: %w", err)
	}

	s.logger.Info("created principal", "id", p.ID, "email", p.Email)
	return nil
}

// GetPrincipal retrieves a principal by ID.
func (s *SQLiteStore) GetPrincipal(ctx context.Context, id string) (*Principal, error) {
	query := `
		SELECT id, name, email, password_hash, date_of_birth, date_of_joining, created_at
		FROM principals
		WHERE id = ?
	`

	return s.scanPrincipal(s.db.QueryRowContext(ctx, query, id))
}

// GetPrincipalByEmail retrieves a principal by exact email match.
func (s *SQLiteStore) GetPrincipalByEmail(ctx context.Context, email string) (*Principal, error) {
	query := `
		SELECT id, name, email, password_hash, date_of_birth, date_of_joining, created_at
		FROM principals
		WHERE email = ?
	`

	return s.scanPrincipal(s.db.QueryRowContext(ctx, query, email))
}

// scanPrincipal scans a single principal row, mapping sql.ErrNoRows to
// ErrPrincipalNotFound.
func (s *SQLiteStore) scanPrincipal(row *sql.Row) (*Principal, error) {
	var p Principal
	var dob, doj sql.NullString
	var createdAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &dob, &doj, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning principal: %w", err)
	}

	p.DateOfBirth = dob.String
	p.DateOfJoining = doj.String

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &p, nil
}

// nullableString converts an empty string to a NULL database value.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

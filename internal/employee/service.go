// ABOUTME: Record service providing validated CRUD over employee records
// ABOUTME: Checks identifier syntax before any store call and never skips the schema

package employee

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/2389/roster/internal/store"
)

// ErrInvalidID is returned when an identifier is not a 24-character hex
// string. The check happens before any store interaction.
var ErrInvalidID = errors.New("invalid employee id")

// idPattern matches the store's identifier syntax: 24 hex characters.
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Service implements validated employee record operations.
type Service struct {
	employees store.EmployeeStore
	logger    *slog.Logger
}

// NewService creates an employee record service.
func NewService(employees store.EmployeeStore, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		logger:    logger.With("component", "employee"),
	}
}

// Create validates the record against the employee schema and inserts it.
// On a schema violation no store interaction occurs and the violation is
// returned as-is.
func (s *Service) Create(ctx context.Context, rec map[string]any) (*store.Employee, error) {
	if err := Schema.Validate(rec); err != nil {
		return nil, err
	}

	e := fromRecord(rec)
	e.ID = newID()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.employees.CreateEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	return e, nil
}

// Get retrieves a record by identifier. Returns ErrInvalidID for malformed
// identifiers and store.ErrEmployeeNotFound for well-formed absent ones.
func (s *Service) Get(ctx context.Context, id string) (*store.Employee, error) {
	if !idPattern.MatchString(id) {
		return nil, ErrInvalidID
	}

	return s.employees.GetEmployee(ctx, id)
}

// List returns every record in the store, in store-defined order.
func (s *Service) List(ctx context.Context) ([]*store.Employee, error) {
	return s.employees.ListEmployees(ctx)
}

// Update re-validates the full record (updates are not schema-relaxed) and
// replaces the stored row. The identifier is immutable.
func (s *Service) Update(ctx context.Context, id string, rec map[string]any) (*store.Employee, error) {
	if !idPattern.MatchString(id) {
		return nil, ErrInvalidID
	}

	if err := Schema.Validate(rec); err != nil {
		return nil, err
	}

	e := fromRecord(rec)
	e.ID = id
	e.UpdatedAt = time.Now()

	if err := s.employees.UpdateEmployee(ctx, e); err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating employee: %w", err)
	}

	// Re-read for the stored snapshot, including the original created_at.
	return s.employees.GetEmployee(ctx, id)
}

// Delete removes a record by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !idPattern.MatchString(id) {
		return ErrInvalidID
	}

	return s.employees.DeleteEmployee(ctx, id)
}

// newID returns a 24-character hex identifier for a new record.
func newID() string {
	buf := make([]byte, 12)
	rand.Read(buf) // never fails; crypto/rand aborts the process instead
	return hex.EncodeToString(buf)
}

// fromRecord converts a validated record to its storage form. The schema
// has already established the types, so assertions here are lenient.
func fromRecord(rec map[string]any) *store.Employee {
	e := &store.Employee{
		Name:          stringField(rec, "name"),
		Cellphone1:    stringField(rec, "cellphone1"),
		Cellphone2:    stringField(rec, "cellphone2"),
		HomeNumber:    stringField(rec, "homenumber"),
		Address:       stringField(rec, "address"),
		City:          stringField(rec, "city"),
		State:         stringField(rec, "state"),
		Email:         stringField(rec, "emailid"),
		JobTitle:      stringField(rec, "jobTitle"),
		PaymentMethod: stringField(rec, "paymentMethod"),
		DateOfBirth:   stringField(rec, "dateOfBirth"),
		DateOfJoining: stringField(rec, "dateOfJoining"),
		Status:        stringField(rec, "employeeStatus"),
	}

	if items, ok := rec["languages"].([]any); ok {
		e.Languages = make([]string, 0, len(items))
		for _, item := range items {
			if str, ok := item.(string); ok {
				e.Languages = append(e.Languages, str)
			}
		}
	} else if langs, ok := rec["languages"].([]string); ok {
		e.Languages = langs
	}

	e.PaidVacationDays = intField(rec, "ofPaidVacationDaysAllowed")
	e.PaidSickDays = intField(rec, "ofPaidSickVacationAllowed")

	return e
}

func stringField(rec map[string]any, name string) string {
	str, _ := rec[name].(string)
	return str
}

func intField(rec map[string]any, name string) *int {
	switch n := rec[name].(type) {
	case float64:
		v := int(n)
		return &v
	case int:
		v := n
		return &v
	default:
		return nil
	}
}

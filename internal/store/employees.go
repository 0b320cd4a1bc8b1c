// ABOUTME: Employee store methods for the SQLite store
// ABOUTME: Covers CRUD with full-row replacement on update and JSON-encoded languages

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const employeeColumns = `id, name, cellphone1, cellphone2, homenumber, address, city, state,
		emailid, job_title, payment_method, date_of_birth, date_of_joining,
		languages, paid_vacation_days, paid_sick_days, status, created_at, updated_at`

// CreateEmployee inserts a new employee record.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, e *Employee) error {
	languages, err := json.Marshal(e.Languages)
	if err != nil {
		return fmt.Errorf("encoding languages: %w", err)
	}

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		nullableString(e.Cellphone1),
		nullableString(e.Cellphone2),
		nullableString(e.HomeNumber),
		e.Address,
		e.City,
		e.State,
		e.Email,
		e.JobTitle,
		e.PaymentMethod,
		nullableString(e.DateOfBirth),
		nullableString(e.DateOfJoining),
		string(languages),
		nullableInt(e.PaidVacationDays),
		nullableInt(e.PaidSickDays),
		e.Status,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}

	s.logger.Info("created employee", "id", e.ID, "name", e.Name)
	return nil
}

// GetEmployee retrieves an employee record by ID.
func (s *SQLiteStore) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// ListEmployees returns all employee records in insertion order.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}

	return employees, nil
}

// UpdateEmployee replaces every mutable column of an existing record.
// Returns ErrEmployeeNotFound if no record matches e.ID.
func (s *SQLiteStore) UpdateEmployee(ctx context.Context, e *Employee) error {
	languages, err := json.Marshal(e.Languages)
	if err != nil {
		return fmt.Errorf("encoding languages: %w", err)
	}

	query := `
		UPDATE employees
		SET name = ?, cellphone1 = ?, cellphone2 = ?, homenumber = ?, address = ?,
			city = ?, state = ?, emailid = ?, job_title = ?, payment_method = ?,
			date_of_birth = ?, date_of_joining = ?, languages = ?,
			paid_vacation_days = ?, paid_sick_days = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Name,
		nullableString(e.Cellphone1),
		nullableString(e.Cellphone2),
		nullableString(e.HomeNumber),
		e.Address,
		e.City,
		e.State,
		e.Email,
		e.JobTitle,
		e.PaymentMethod,
		nullableString(e.DateOfBirth),
		nullableString(e.DateOfJoining),
		string(languages),
		nullableInt(e.PaidVacationDays),
		nullableInt(e.PaidSickDays),
		e.Status,
		e.UpdatedAt.UTC().Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	s.logger.Info("updated employee", "id", e.ID)
	return nil
}

// DeleteEmployee removes an employee record by ID.
// Returns ErrEmployeeNotFound if no record matches.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	s.logger.Info("deleted employee", "id", id)
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEmployee scans a single employee row.
func scanEmployee(row scanner) (*Employee, error) {
	var e Employee
	var cell1, cell2, home, dob, doj sql.NullString
	var vacation, sick sql.NullInt64
	var languages, createdAtStr, updatedAtStr string

	err := row.Scan(
		&e.ID, &e.Name, &cell1, &cell2, &home, &e.Address, &e.City, &e.State,
		&e.Email, &e.JobTitle, &e.PaymentMethod, &dob, &doj,
		&languages, &vacation, &sick, &e.Status, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}

	e.Cellphone1 = cell1.String
	e.Cellphone2 = cell2.String
	e.HomeNumber = home.String
	e.DateOfBirth = dob.String
	e.DateOfJoining = doj.String

	if err := json.Unmarshal([]byte(languages), &e.Languages); err != nil {
		return nil, fmt.Errorf("decoding languages: %w", err)
	}

	if vacation.Valid {
		v := int(vacation.Int64)
		e.PaidVacationDays = &v
	}
	if sick.Valid {
		v := int(sick.Int64)
		e.PaidSickDays = &v
	}

	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &e, nil
}

// nullableInt converts a nil pointer to a NULL database value.
func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

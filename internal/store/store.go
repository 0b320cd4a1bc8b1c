// ABOUTME: Store types and errors for roster persistence
// ABOUTME: Defines Principal and Employee structs plus the store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrPrincipalNotFound is returned when a principal doesn't exist.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrEmployeeNotFound is returned when an employee record doesn't exist.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrEmailExists is returned when creating a principal with an email that is
// already registered.
var ErrEmailExists = errors.New("email already registered")

// Principal represents an account holder capable of authenticating.
// PasswordHash is a bcrypt hash; the raw password is never stored.
type Principal struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	DateOfBirth   string // optional, as supplied at signup
	DateOfJoining string // optional, as supplied at signup
	CreatedAt     time.Time
}

// Employee is an HR record, independent of any principal. Field names in the
// JSON tags follow the wire contract consumed by existing clients.
type Employee struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Cellphone1       string    `json:"cellphone1,omitempty"`
	Cellphone2       string    `json:"cellphone2,omitempty"`
	HomeNumber       string    `json:"homenumber,omitempty"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Email            string    `json:"emailid"`
	JobTitle         string    `json:"jobTitle"`
	PaymentMethod    string    `json:"paymentMethod"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	DateOfJoining    string    `json:"dateOfJoining,omitempty"`
	Languages        []string  `json:"languages"`
	PaidVacationDays *int      `json:"ofPaidVacationDaysAllowed,omitempty"`
	PaidSickDays     *int      `json:"ofPaidSickVacationAllowed,omitempty"`
	Status           string    `json:"employeeStatus"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// PrincipalStore defines the interface for principal persistence.
type PrincipalStore interface {
	CreatePrincipal(ctx context.Context, p *Principal) error
	GetPrincipal(ctx context.Context, id string) (*Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*Principal, error)
}

// EmployeeStore defines the interface for employee record persistence.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

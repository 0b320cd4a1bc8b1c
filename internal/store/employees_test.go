// ABOUTME: Tests for employee store operations
// ABOUTME: Covers CRUD, languages round-tripping, and not-found handling

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(id string) *Employee {
	now := time.Now().UTC().Truncate(time.Second)
	return &Employee{
		ID:               id,
		Name:             "John Doe",
		Cellphone1:       "0123456789",
		Address:          "42 Main Street",
		City:             "Springfield",
		State:            "IL",
		Email:            "john.doe@example.com",
		JobTitle:         "Engineer",
		PaymentMethod:    "Bank Transfer",
		DateOfBirth:      "1990-01-01",
		DateOfJoining:    "2020-06-15",
		Languages:        []string{"English", "Spanish"},
		PaidVacationDays: intPtr(20),
		PaidSickDays:     intPtr(10),
		Status:           "Active",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestEmployeeStore_CreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := testEmployee("5f8d0d55b54764421b7156c1")
	require.NoError(t, store.CreateEmployee(ctx, e))

	retrieved, err := store.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, retrieved.ID)
	assert.Equal(t, "John Doe", retrieved.Name)
	assert.Equal(t, "0123456789", retrieved.Cellphone1)
	assert.Empty(t, retrieved.Cellphone2)
	assert.Equal(t, "Bank Transfer", retrieved.PaymentMethod)
	assert.Equal(t, []string{"English", "Spanish"}, retrieved.Languages)
	require.NotNil(t, retrieved.PaidVacationDays)
	assert.Equal(t, 20, *retrieved.PaidVacationDays)
	require.NotNil(t, retrieved.PaidSickDays)
	assert.Equal(t, 10, *retrieved.PaidSickDays)
	assert.Equal(t, "Active", retrieved.Status)
}

func TestEmployeeStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetEmployee(ctx, "654321234567654321234567")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeStore_NilCounters(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := testEmployee("5f8d0d55b54764421b7156c2")
	e.PaidVacationDays = nil
	e.PaidSickDays = nil
	require.NoError(t, store.CreateEmployee(ctx, e))

	retrieved, err := store.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.PaidVacationDays)
	assert.Nil(t, retrieved.PaidSickDays)
}

func TestEmployeeStore_List(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{
		"5f8d0d55b54764421b7156c1",
		"5f8d0d55b54764421b7156c2",
		"5f8d0d55b54764421b7156c3",
	} {
		e := testEmployee(id)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		e.UpdatedAt = e.CreatedAt
		require.NoError(t, store.CreateEmployee(ctx, e))
	}

	employees, err = store.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	// Insertion order is preserved
	assert.Equal(t, "5f8d0d55b54764421b7156c1", employees[0].ID)
	assert.Equal(t, "5f8d0d55b54764421b7156c2", employees[1].ID)
	assert.Equal(t, "5f8d0d55b54764421b7156c3", employees[2].ID)
}

func TestEmployeeStore_Update(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := testEmployee("5f8d0d55b54764421b7156c1")
	require.NoError(t, store.CreateEmployee(ctx, e))

	e.Name = "Jane Doe"
	e.City = "Shelbyville"
	e.Languages = []string{"French"}
	e.PaidVacationDays = nil
	e.Status = "Inactive"
	e.UpdatedAt = e.UpdatedAt.Add(time.Minute)
	require.NoError(t, store.UpdateEmployee(ctx, e))

	retrieved, err := store.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", retrieved.Name)
	assert.Equal(t, "Shelbyville", retrieved.City)
	assert.Equal(t, []string{"French"}, retrieved.Languages)
	assert.Nil(t, retrieved.PaidVacationDays)
	assert.Equal(t, "Inactive", retrieved.Status)

	// created_at is untouched by updates
	assert.Equal(t, e.CreatedAt, retrieved.CreatedAt)
}

func TestEmployeeStore_Update_NotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := testEmployee("654321234567654321234567")
	err := store.UpdateEmployee(ctx, e)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := testEmployee("5f8d0d55b54764421b7156c1")
	require.NoError(t, store.CreateEmployee(ctx, e))

	require.NoError(t, store.DeleteEmployee(ctx, e.ID))

	_, err := store.GetEmployee(ctx, e.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeStore_Delete_NotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.DeleteEmployee(ctx, "654321234567654321234567")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

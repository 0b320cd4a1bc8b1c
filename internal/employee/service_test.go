// ABOUTME: Tests for the employee record service
// ABOUTME: Covers validated CRUD, identifier syntax checks, and schema messages

package employee

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/roster/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		st.Close()
	})

	return NewService(st, slog.Default())
}

func validRecord() map[string]any {
	return map[string]any{
		"name":                      "John Doe",
		"cellphone1":                "0123456789",
		"address":                   "42 Main Street",
		"city":                      "Springfield",
		"state":                     "IL",
		"emailid":                   "john.doe@example.com",
		"jobTitle":                  "Engineer",
		"paymentMethod":             "Bank Transfer",
		"dateOfBirth":               "1990-01-01",
		"dateOfJoining":             "2020-06-15",
		"languages":                 []any{"English", "Spanish"},
		"ofPaidVacationDaysAllowed": 20.0,
		"ofPaidSickVacationAllowed": 10.0,
		"employeeStatus":            "Active",
	}
}

func TestCreate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{24}$`, created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, []string{"English", "Spanish"}, created.Languages)
	require.NotNil(t, created.PaidVacationDays)
	assert.Equal(t, 20, *created.PaidVacationDays)

	// Round-trips through the store
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Languages, got.Languages)
}

func TestCreate_UniqueIDs(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		created, err := svc.Create(ctx, validRecord())
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(r map[string]any) { delete(r, "name") },
			wantMsg: "Name is required",
		},
		{
			name:    "name too short",
			mutate:  func(r map[string]any) { r["name"] = "J" },
			wantMsg: "Name must be between 2 and 30 characters",
		},
		{
			name:    "cellphone with letters",
			mutate:  func(r map[string]any) { r["cellphone1"] = "01234abcde" },
			wantMsg: "Cellphone 1 must contain 10 to 15 digits",
		},
		{
			name:    "cellphone too short",
			mutate:  func(r map[string]any) { r["cellphone1"] = "12345" },
			wantMsg: "Cellphone 1 must contain 10 to 15 digits",
		},
		{
			name:    "bad email",
			mutate:  func(r map[string]any) { r["emailid"] = "not-an-email" },
			wantMsg: "A valid email address is required",
		},
		{
			name:    "unknown payment method",
			mutate:  func(r map[string]any) { r["paymentMethod"] = "Crypto" },
			wantMsg: "Payment method must be one of: Cash, Bank Transfer, Cheque, UPI",
		},
		{
			name:    "future date of birth",
			mutate:  func(r map[string]any) { r["dateOfBirth"] = "2999-01-01" },
			wantMsg: "Date of birth must be in the past",
		},
		{
			name:    "languages missing",
			mutate:  func(r map[string]any) { delete(r, "languages") },
			wantMsg: "Languages must be a non-empty list of strings",
		},
		{
			name:    "languages empty",
			mutate:  func(r map[string]any) { r["languages"] = []any{} },
			wantMsg: "Languages must be a non-empty list of strings",
		},
		{
			name:    "vacation days out of range",
			mutate:  func(r map[string]any) { r["ofPaidVacationDaysAllowed"] = 400.0 },
			wantMsg: "Paid vacation days allowed must be between 0 and 365",
		},
		{
			name:    "fractional vacation days",
			mutate:  func(r map[string]any) { r["ofPaidVacationDaysAllowed"] = 20.5 },
			wantMsg: "Paid vacation days allowed must be a whole number",
		},
		{
			name:    "fractional sick days",
			mutate:  func(r map[string]any) { r["ofPaidSickVacationAllowed"] = 0.5 },
			wantMsg: "Paid sick days allowed must be a whole number",
		},
		{
			name:    "negative sick days",
			mutate:  func(r map[string]any) { r["ofPaidSickVacationAllowed"] = -1.0 },
			wantMsg: "Paid sick days allowed must be between 0 and 365",
		},
		{
			name:    "unknown status",
			mutate:  func(r map[string]any) { r["employeeStatus"] = "Retired" },
			wantMsg: "Employee status must be one of: Active, Inactive, Terminated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(rec)

			_, err := svc.Create(ctx, rec)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCreate_DayCountsRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// A fractional count is rejected before any store interaction, so a
	// read can never return a truncated value the create silently changed.
	rec := validRecord()
	rec["ofPaidVacationDaysAllowed"] = 20.5

	_, err := svc.Create(ctx, rec)
	require.Error(t, err)

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	// Whole values come back exactly as sent.
	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PaidVacationDays)
	assert.Equal(t, 20, *got.PaidVacationDays)
	require.NotNil(t, got.PaidSickDays)
	assert.Equal(t, 10, *got.PaidSickDays)
}

func TestCreate_MultibyteName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// 24 characters but 31 bytes: within the 30-character bound.
	rec := validRecord()
	rec["name"] = "Åsa Öström-Ñoño Ångström"

	created, err := svc.Create(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "Åsa Öström-Ñoño Ångström", created.Name)
}

func TestCreate_EmptyStatusAllowed(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	rec := validRecord()
	rec["employeeStatus"] = ""

	created, err := svc.Create(ctx, rec)
	require.NoError(t, err)
	assert.Empty(t, created.Status)
}

func TestCreate_FirstViolationWins(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// Both name and paymentMethod are invalid; name is declared first.
	rec := validRecord()
	delete(rec, "name")
	rec["paymentMethod"] = "Crypto"

	_, err := svc.Create(ctx, rec)
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())
}

func TestGet_InvalidID(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, id := range []string{"invalid-id", "", "123", "5f8d0d55b54764421b7156g1"} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q", id)
	}
}

func TestGet_WellFormedAbsentID(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "654321234567654321234567")
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	_, err = svc.Create(ctx, validRecord())
	require.NoError(t, err)
	_, err = svc.Create(ctx, validRecord())
	require.NoError(t, err)

	employees, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	rec := validRecord()
	rec["name"] = "Jane Doe"
	rec["employeeStatus"] = "Inactive"

	updated, err := svc.Update(ctx, created.ID, rec)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Inactive", updated.Status)
}

func TestUpdate_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	// Updates run the full schema, same as creates.
	rec := validRecord()
	delete(rec, "name")

	_, err = svc.Update(ctx, created.ID, rec)
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())

	// The stored record is untouched after a rejected update.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
}

func TestUpdate_InvalidID(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "invalid-id", validRecord())
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "654321234567654321234567", validRecord())
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestDelete_InvalidID(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, "invalid-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, "654321234567654321234567")
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

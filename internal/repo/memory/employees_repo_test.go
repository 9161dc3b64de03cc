package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(employeeID, email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:     "Alan",
		LastName:      "Turing",
		EmployeeID:    employeeID,
		Email:         email,
		Phone:         "1234567890",
		Department:    "Engineering",
		DateOfJoining: "2021-06-23",
		Role:          "Researcher",
	}
}

func TestEmployeesRepoKeepsInsertionOrder(t *testing.T) {
	r := NewEmployeesRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, req("E1", "one@example.com"))
	require.NoError(t, err)
	_, err = r.Create(ctx, req("E2", "two@example.com"))
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "E1", list[0].EmployeeID)
	assert.Equal(t, "E2", list[1].EmployeeID)

	list[0].EmployeeID = "mutated"
	again, _ := r.List(ctx)
	assert.Equal(t, "E1", again[0].EmployeeID, "List must return a copy")
}

func TestEmployeesRepoConstraints(t *testing.T) {
	r := NewEmployeesRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, req("E1", "one@example.com"))
	require.NoError(t, err)

	_, err = r.Create(ctx, req("E1", "new@example.com"))
	assert.True(t, errors.Is(err, employee.ErrDuplicateEmployeeID))

	_, err = r.Create(ctx, req("E9", "one@example.com"))
	assert.True(t, errors.Is(err, employee.ErrDuplicateEmail))

	ok, _ := r.ExistsByEmployeeID(ctx, "E1")
	assert.True(t, ok)
	ok, _ = r.ExistsByEmail(ctx, "nobody@example.com")
	assert.False(t, ok)
}

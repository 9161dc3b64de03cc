package employee

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		d, err := ParseDate("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("rfc3339 from a date picker", func(t *testing.T) {
		d, err := ParseDate("2024-03-05T00:00:00.000Z")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("05/03/2024")
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	e := Employee{EmployeeID: "E100", DateOfJoining: DateOf(time.Date(2023, 1, 9, 15, 4, 0, 0, time.UTC))}

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dateOfJoining":"2023-01-09"`)

	var back Employee
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.DateOfJoining.Equal(e.DateOfJoining.Time))
}

func TestConflictError(t *testing.T) {
	err := DuplicateEmployeeID("E100")
	assert.True(t, errors.Is(err, ErrDuplicateEmployeeID))
	assert.False(t, errors.Is(err, ErrDuplicateEmail))
	assert.Equal(t, "An employee with the Employee ID E100 already exists.", err.Error())

	err = DuplicateEmail("a@b.com")
	assert.True(t, errors.Is(err, ErrDuplicateEmail))

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "email", conflict.Field)
	assert.Equal(t, "a@b.com", conflict.Value)
}

func TestNewFromCreateRequestEchoesInput(t *testing.T) {
	req := CreateEmployeeRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		EmployeeID:    "E100",
		Email:         "ada@example.com",
		Phone:         "1234567890",
		Department:    "Engineering",
		DateOfJoining: "2022-07-01",
		Role:          "Engineer",
	}

	e, err := NewFromCreateRequest(req)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, req.FirstName, e.FirstName)
	assert.Equal(t, req.LastName, e.LastName)
	assert.Equal(t, req.EmployeeID, e.EmployeeID)
	assert.Equal(t, req.Email, e.Email)
	assert.Equal(t, req.Phone, e.Phone)
	assert.Equal(t, req.Department, e.Department)
	assert.Equal(t, req.DateOfJoining, e.DateOfJoining.String())
	assert.Equal(t, req.Role, e.Role)
	assert.False(t, e.CreatedAt.IsZero())
}

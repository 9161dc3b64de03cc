package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/geocoder89/employeehub/internal/db"
	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/geocoder89/employeehub/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a disposable database: TEST_DB_DSN=postgres://... go test ./internal/repo/postgres
func setupRepo(t *testing.T) (*postgres.EmployeesRepo, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, db.Migrate(dsn, true, log))

	pool, err := db.NewPool(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return postgres.NewEmployeesRepo(pool, nil), pool
}

func request(employeeID, email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:     "Katherine",
		LastName:      "Johnson",
		EmployeeID:    employeeID,
		Email:         email,
		Phone:         "1234567890",
		Department:    "Engineering",
		DateOfJoining: "2019-05-20",
		Role:          "Mathematician",
	}
}

func TestEmployeesRepoCreateAndList(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	exists, err := repo.ExistsByEmployeeID(ctx, "E100")
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := repo.Create(ctx, request("E100", "kj@example.com"))
	require.NoError(t, err)

	exists, err = repo.ExistsByEmployeeID(ctx, "E100")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "kj@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "2019-05-20", listed[0].DateOfJoining.String())
}

func TestEmployeesRepoUniqueConstraintsMapToConflicts(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, request("E100", "kj@example.com"))
	require.NoError(t, err)

	// skips the existence checks, the way a request losing the race would
	_, err = repo.Create(ctx, request("E100", "other@example.com"))
	assert.True(t, errors.Is(err, employee.ErrDuplicateEmployeeID), "got %v", err)

	_, err = repo.Create(ctx, request("E200", "kj@example.com"))
	assert.True(t, errors.Is(err, employee.ErrDuplicateEmail), "got %v", err)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/geocoder89/employeehub/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// constraint names come from the create_employees migration
const (
	employeeIDUniq = "employees_employee_id_key"
	emailUniq      = "employees_email_key"
)

type EmployeesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewEmployeesRepo(pool *pgxpool.Pool, prom *observability.Prom) *EmployeesRepo {
	return &EmployeesRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *EmployeesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *EmployeesRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool

	err := r.observe("employees.exists_by_employee_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`,
			employeeID,
		).Scan(&exists)
	})

	return exists, err
}

func (r *EmployeesRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := r.observe("employees.exists_by_email", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
			email,
		).Scan(&exists)
	})

	return exists, err
}

// Create inserts a new employee. A unique violation means another request won the race after our
// existence checks; it comes back as the same conflict error the checks would have produced.
func (r *EmployeesRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	e, err := employee.NewFromCreateRequest(req)
	if err != nil {
		return employee.Employee{}, err
	}

	err = r.observe("employees.create", func() error {
		_, execErr := r.pool.Exec(ctx, `
		INSERT INTO employees (id, first_name, last_name, employee_id, email, phone, department, date_of_joining, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, e.ID, e.FirstName, e.LastName, e.EmployeeID, e.Email, e.Phone, e.Department, e.DateOfJoining.Time, e.Role, e.CreatedAt, e.UpdatedAt)
		return execErr
	})

	if err != nil {
		if IsUniqueViolation(err) {
			switch constraintName(err) {
			case employeeIDUniq:
				return employee.Employee{}, employee.DuplicateEmployeeID(e.EmployeeID)
			case emailUniq:
				return employee.Employee{}, employee.DuplicateEmail(e.Email)
			}
		}
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	return e, nil
}

// List returns every employee in whatever order postgres hands them back.
func (r *EmployeesRepo) List(ctx context.Context) (out []employee.Employee, err error) {
	var rows pgx.Rows

	err = r.observe("employees.list", func() error {
		var qerr error
		rows, qerr = r.pool.Query(ctx, `
		SELECT id, first_name, last_name, employee_id, email, phone, department, date_of_joining, role, created_at, updated_at
		FROM employees
	`)
		return qerr
	})
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	out = make([]employee.Employee, 0)

	for rows.Next() {
		e, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, e)
	}

	if rows.Err() != nil {
		if r.prom != nil {
			r.prom.DbErrorsTotal.WithLabelValues("employees.list", "rows_err").Inc()
		}
		return nil, rows.Err()
	}

	return out, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee

	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.EmployeeID,
		&e.Email,
		&e.Phone,
		&e.Department,
		&e.DateOfJoining.Time,
		&e.Role,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.DateOfJoining = employee.DateOf(e.DateOfJoining.Time)
	return e, nil
}

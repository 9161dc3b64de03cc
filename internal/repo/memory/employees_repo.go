package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/employeehub/internal/domain/employee"
)

// EmployeesRepo keeps employees in insertion order. It mirrors the postgres repo closely enough for
// handler tests, including the unique constraints on employeeId and email.
type EmployeesRepo struct {
	mu    sync.RWMutex
	items []employee.Employee
}

func NewEmployeesRepo() *EmployeesRepo {
	return &EmployeesRepo{}
}

func (r *EmployeesRepo) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmployeesRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmployeesRepo) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	e, err := employee.NewFromCreateRequest(req)
	if err != nil {
		return employee.Employee{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.EmployeeID == e.EmployeeID {
			return employee.Employee{}, employee.DuplicateEmployeeID(e.EmployeeID)
		}
		if existing.Email == e.Email {
			return employee.Employee{}, employee.DuplicateEmail(e.Email)
		}
	}

	r.items = append(r.items, e)
	return e, nil
}

func (r *EmployeesRepo) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.items))
	copy(out, r.items)
	return out, nil
}

package employee

import "time"

// Departments offered by the form. The API itself stores whatever string it receives.
var Departments = []string{"HR", "Engineering", "Marketing", "Sales"}

type Employee struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	EmployeeID    string    `json:"employeeId"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Department    string    `json:"department"`
	DateOfJoining Date      `json:"dateOfJoining"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateEmployeeRequest is the body of POST /api/employees. Every field is required.
type CreateEmployeeRequest struct {
	FirstName     string `json:"firstName" binding:"required,notblank"`
	LastName      string `json:"lastName" binding:"required,notblank"`
	EmployeeID    string `json:"employeeId" binding:"required,notblank"`
	Email         string `json:"email" binding:"required,notblank,email"`
	Phone         string `json:"phone" binding:"required,notblank"`
	Department    string `json:"department" binding:"required,notblank"`
	DateOfJoining string `json:"dateOfJoining" binding:"required,notblank,joindate"`
	Role          string `json:"role" binding:"required,notblank"`
}

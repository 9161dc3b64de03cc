package employee

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
)

// ConflictError names the unique field that collided and the submitted value.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case "employeeId":
		return fmt.Sprintf("An employee with the Employee ID %s already exists.", e.Value)
	case "email":
		return fmt.Sprintf("An employee with the email %s already exists.", e.Value)
	default:
		return fmt.Sprintf("An employee with the %s %s already exists.", e.Field, e.Value)
	}
}

func (e *ConflictError) Unwrap() error {
	switch e.Field {
	case "employeeId":
		return ErrDuplicateEmployeeID
	case "email":
		return ErrDuplicateEmail
	default:
		return nil
	}
}

func DuplicateEmployeeID(id string) error {
	return &ConflictError{Field: "employeeId", Value: id}
}

func DuplicateEmail(email string) error {
	return &ConflictError{Field: "email", Value: email}
}

// Package form holds the employee form's state and the checks it runs before anything is sent.
package form

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/geocoder89/employeehub/internal/domain/employee"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

const maxEmployeeIDLen = 10

// Form is the eight editable fields, kept as the raw strings the user typed.
type Form struct {
	FirstName     string `json:"firstName" form:"firstName"`
	LastName      string `json:"lastName" form:"lastName"`
	EmployeeID    string `json:"employeeId" form:"employeeId"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	Department    string `json:"department" form:"department"`
	DateOfJoining string `json:"dateOfJoining" form:"dateOfJoining"`
	Role          string `json:"role" form:"role"`
}

// Errors maps a field's JSON name to the message shown under it.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (f *Form) Reset() {
	*f = Form{}
}

// Validate checks every field and returns one message per failing field. now decides what counts as
// a future joining date; only the calendar day matters.
func (f Form) Validate(now time.Time) Errors {
	errs := Errors{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First Name is required."
	} else if !nameRe.MatchString(f.FirstName) {
		errs["firstName"] = "First Name must contain only letters."
	}

	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last Name is required."
	} else if !nameRe.MatchString(f.LastName) {
		errs["lastName"] = "Last Name must contain only letters."
	}

	if strings.TrimSpace(f.EmployeeID) == "" {
		errs["employeeId"] = "Employee ID is required."
	} else if utf8.RuneCountInString(f.EmployeeID) > maxEmployeeIDLen {
		errs["employeeId"] = "Employee ID must be at most 10 characters."
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required."
	} else if !emailRe.MatchString(f.Email) {
		errs["email"] = "Invalid email format."
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required."
	} else if !phoneRe.MatchString(f.Phone) {
		errs["phone"] = "Phone number must be 10 digits."
	}

	if strings.TrimSpace(f.Department) == "" {
		errs["department"] = "Department is required."
	}

	if strings.TrimSpace(f.DateOfJoining) == "" {
		errs["dateOfJoining"] = "Date of Joining is required."
	} else if joined, err := employee.ParseDate(f.DateOfJoining); err != nil {
		errs["dateOfJoining"] = "Date of Joining must be a valid date."
	} else if joined.After(employee.DateOf(now).Time) {
		errs["dateOfJoining"] = "Date of Joining cannot be in the future."
	}

	if strings.TrimSpace(f.Role) == "" {
		errs["role"] = "Role is required."
	}

	return errs
}

// Departments lists the choices offered by the department select.
func Departments() []string {
	out := make([]string, len(employee.Departments))
	copy(out, employee.Departments)
	return out
}

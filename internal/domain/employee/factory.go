package employee

import (
	"time"

	"github.com/google/uuid"
)

// NewFromCreateRequest builds the record to insert. The request must already have passed binding,
// so DateOfJoining is known to parse.
func NewFromCreateRequest(req CreateEmployeeRequest) (Employee, error) {
	joined, err := ParseDate(req.DateOfJoining)
	if err != nil {
		return Employee{}, err
	}

	now := time.Now().UTC()

	return Employee{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		EmployeeID:    req.EmployeeID,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		DateOfJoining: joined,
		Role:          req.Role,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

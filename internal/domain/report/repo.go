package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the employee or their base report row does
// not exist. It is the one condition that fails a comprehensive-report
// request; missing domain data never does.
var ErrNotFound = errors.New("not found")

type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
}

type ReportRepository interface {
	// LatestByEmployee returns the most recent base report row for the
	// employee, or ErrNotFound when none exists.
	LatestByEmployee(ctx context.Context, employeeID uuid.UUID) (*MedicalReport, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error)
}

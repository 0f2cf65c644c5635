package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	employees EmployeeRepository
	reports   ReportRepository
	resolver  *Resolver
	logger    zerolog.Logger
}

func NewService(employees EmployeeRepository, reports ReportRepository, resolver *Resolver, logger zerolog.Logger) *Service {
	return &Service{employees: employees, reports: reports, resolver: resolver, logger: logger}
}

// ComprehensiveReport assembles the full classified document for an
// employee's most recent executive medical. The employee and base report
// lookups are the only fatal dependencies; every clinical domain degrades
// to defaulted categories when absent.
func (s *Service) ComprehensiveReport(ctx context.Context, employeeID uuid.UUID) (*ComprehensiveReport, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("resolve employee: %w", err)
	}

	base, err := s.reports.LatestByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("resolve base report: %w", err)
	}

	recs, err := s.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	doc, ambiguous := Assemble(emp, base, recs)
	for _, a := range ambiguous {
		s.logger.Warn().
			Str("employee_id", employeeID.String()).
			Str("domain", a.Domain).
			Str("field", a.Field).
			Str("text", a.Text).
			Msg("free text matched no classification rule")
	}

	return doc, nil
}

// ListReports returns the employee's report history metadata, newest first.
func (s *Service) ListReports(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error) {
	return s.reports.ListByEmployee(ctx, employeeID, limit, offset)
}

package timeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	history   HistoryStore
	employees GenderLookup
	logger    zerolog.Logger
}

func NewService(history HistoryStore, employees GenderLookup, logger zerolog.Logger) *Service {
	return &Service{history: history, employees: employees, logger: logger}
}

// TreatmentTimeline builds the gender-filtered action timeline for an
// employee. An unknown employee yields an empty timeline rather than an
// error; only storage failures propagate.
func (s *Service) TreatmentTimeline(ctx context.Context, employeeID uuid.UUID) (*Timeline, error) {
	gender, known, err := s.employees.Gender(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("resolve employee gender: %w", err)
	}
	if !known {
		s.logger.Debug().
			Str("employee_id", employeeID.String()).
			Msg("timeline requested for unknown employee")
		return Build(employeeID, "", nil), nil
	}

	snapshots, err := s.history.Snapshots(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load report history: %w", err)
	}

	return Build(employeeID, gender, snapshots), nil
}

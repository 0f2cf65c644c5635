package timeline

import (
	"context"

	"github.com/google/uuid"
)

// HistoryStore loads every historical report snapshot for an employee,
// ordered by report date ascending.
type HistoryStore interface {
	Snapshots(ctx context.Context, employeeID uuid.UUID) ([]*Snapshot, error)
}

// GenderLookup resolves the employee's gender for assembly-time filtering.
// An unknown employee reports ok=false; the timeline then assembles
// unfiltered over an empty history rather than failing.
type GenderLookup interface {
	Gender(ctx context.Context, employeeID uuid.UUID) (gender string, ok bool, err error)
}

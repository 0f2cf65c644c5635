package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tableFor maps each registered domain to its table. Query text is built
// from this registry only, never from caller input.
var tableFor = map[string]string{
	DomainVitals:                "vitals",
	DomainClinicalExamination:   "clinical_examinations",
	DomainMedicalHistory:        "medical_history",
	DomainLabTests:              "lab_tests",
	DomainSpecialInvestigations: "special_investigations",
	DomainLifestyle:             "lifestyle",
	DomainMentalHealth:          "mental_health",
	DomainScreening:             "screening",
	DomainMensHealth:            "mens_health",
	DomainWomensHealth:          "womens_health",
}

type storePG struct{ pool *pgxpool.Pool }

// NewStorePG returns a Store backed by the per-domain Postgres tables.
func NewStorePG(pool *pgxpool.Pool) Store {
	return &storePG{pool: pool}
}

func (s *storePG) Latest(ctx context.Context, domain string, employeeID uuid.UUID) (*Record, error) {
	table, ok := tableFor[domain]
	if !ok {
		return nil, fmt.Errorf("unknown clinical domain %q", domain)
	}

	// Ties on created_at are broken by the larger id (insertion order).
	query := fmt.Sprintf(
		`SELECT to_jsonb(t.*), created_at FROM %s t
		 WHERE employee_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`, table)

	var raw []byte
	var createdAt time.Time
	err := s.pool.QueryRow(ctx, query, employeeID).Scan(&raw, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest %s record: %w", domain, err)
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", domain, err)
	}

	return &Record{Domain: domain, Fields: fields, CreatedAt: createdAt}, nil
}

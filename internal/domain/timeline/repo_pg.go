package timeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
)

// Domain tables that carry a report_id linking their rows to a specific
// medical report. Mirrors the records registry for the domains the
// timeline reads.
var snapshotTables = map[string]string{
	records.DomainClinicalExamination:   "clinical_examinations",
	records.DomainLabTests:              "lab_tests",
	records.DomainSpecialInvestigations: "special_investigations",
	records.DomainLifestyle:             "lifestyle",
	records.DomainMentalHealth:          "mental_health",
	records.DomainScreening:             "screening",
	records.DomainMensHealth:            "mens_health",
	records.DomainWomensHealth:          "womens_health",
}

type historyStorePG struct{ pool *pgxpool.Pool }

func NewHistoryStorePG(pool *pgxpool.Pool) HistoryStore {
	return &historyStorePG{pool: pool}
}

func (s *historyStorePG) Snapshots(ctx context.Context, employeeID uuid.UUID) ([]*Snapshot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, report_date, doctor_name, nurse_name FROM medical_reports
		 WHERE employee_id = $1
		 ORDER BY report_date ASC, id ASC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	byReport := make(map[uuid.UUID]*Snapshot)
	for rows.Next() {
		snap := &Snapshot{Domains: make(map[string]map[string]any)}
		if err := rows.Scan(&snap.ReportID, &snap.ReportDate, &snap.Doctor, &snap.Nurse); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		snapshots = append(snapshots, snap)
		byReport[snap.ReportID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, nil
	}

	for domain, table := range snapshotTables {
		if err := s.attachDomain(ctx, employeeID, domain, table, byReport); err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

func (s *historyStorePG) attachDomain(ctx context.Context, employeeID uuid.UUID, domain, table string, byReport map[uuid.UUID]*Snapshot) error {
	query := fmt.Sprintf(
		`SELECT report_id, to_jsonb(t.*) FROM %s t
		 WHERE employee_id = $1 AND report_id IS NOT NULL`, table)

	rows, err := s.pool.Query(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("load %s history: %w", domain, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reportID uuid.UUID
		var raw []byte
		if err := rows.Scan(&reportID, &raw); err != nil {
			return fmt.Errorf("scan %s history: %w", domain, err)
		}
		snap, ok := byReport[reportID]
		if !ok {
			continue
		}
		fields := make(map[string]any)
		if err := json.Unmarshal(raw, &fields); err != nil {
			return fmt.Errorf("decode %s history: %w", domain, err)
		}
		snap.Domains[domain] = fields
	}
	return rows.Err()
}

type genderLookupPG struct{ pool *pgxpool.Pool }

func NewGenderLookupPG(pool *pgxpool.Pool) GenderLookup {
	return &genderLookupPG{pool: pool}
}

func (g *genderLookupPG) Gender(ctx context.Context, employeeID uuid.UUID) (string, bool, error) {
	var gender string
	err := g.pool.QueryRow(ctx,
		`SELECT gender FROM employees WHERE id = $1`, employeeID).Scan(&gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return gender, true, nil
}

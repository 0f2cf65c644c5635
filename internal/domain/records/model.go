// Package records provides generic access to the per-domain clinical tables.
// Every domain follows the same shape: many rows per employee, of which only
// the most recent matters for the comprehensive report.
package records

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Registered clinical domains. The order here is the order in which report
// sections consume them.
const (
	DomainVitals                = "vitals"
	DomainClinicalExamination   = "clinical_examination"
	DomainMedicalHistory        = "medical_history"
	DomainLabTests              = "lab_tests"
	DomainSpecialInvestigations = "special_investigations"
	DomainLifestyle             = "lifestyle"
	DomainMentalHealth          = "mental_health"
	DomainScreening             = "screening"
	DomainMensHealth            = "mens_health"
	DomainWomensHealth          = "womens_health"
)

// Domains returns the registered domain names in their canonical order.
func Domains() []string {
	return []string{
		DomainVitals,
		DomainClinicalExamination,
		DomainMedicalHistory,
		DomainLabTests,
		DomainSpecialInvestigations,
		DomainLifestyle,
		DomainMentalHealth,
		DomainScreening,
		DomainMensHealth,
		DomainWomensHealth,
	}
}

// Record is one row from a clinical domain table, carried as a raw field map
// so a single repository can serve every domain.
type Record struct {
	Domain    string         `json:"domain"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
}

// Text returns the named field as a string, or "" when absent or non-text.
func (r *Record) Text(field string) string {
	if r == nil {
		return ""
	}
	s, _ := r.Fields[field].(string)
	return s
}

// Value returns the named raw field, or nil when the record or field is
// absent. Safe on a nil receiver so callers can chain directly off a
// resolver miss.
func (r *Record) Value(field string) any {
	if r == nil {
		return nil
	}
	return r.Fields[field]
}

// Store retrieves the latest record per domain for an employee.
type Store interface {
	// Latest returns the record with the greatest created_at for the
	// employee in the given domain, or (nil, nil) when the employee has no
	// rows there.
	Latest(ctx context.Context, domain string, employeeID uuid.UUID) (*Record, error)
}

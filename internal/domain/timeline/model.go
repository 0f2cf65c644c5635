// Package timeline builds the chronological treatment view: every
// recommendation recorded across an employee's historical reports, tagged
// by category and filtered by gender.
package timeline

import (
	"time"

	"github.com/google/uuid"
)

// Action categories. The two gender-specific categories are removed for the
// non-matching gender at assembly time.
const (
	CategoryClinical     = "Clinical"
	CategoryLifestyle    = "Lifestyle"
	CategoryScreening    = "Screening"
	CategoryMonitoring   = "Monitoring"
	CategoryReferral     = "Referral"
	CategoryFollowUp     = "Follow-up"
	CategoryWomensHealth = "Women's Health"
	CategoryMensHealth   = "Men's Health"
)

// StatusRecommended is the default action status when the source record
// carries none.
const StatusRecommended = "Recommended"

// Action is one recommended intervention extracted from a report snapshot.
type Action struct {
	Category       string    `json:"category"`
	Recommendation string    `json:"recommendation"`
	Status         string    `json:"status"`
	SourceField    string    `json:"source_field"`
	ReportDate     time.Time `json:"report_date"`
}

// Entry groups the actions of one report. Entries never merge across
// reports, even on the same calendar day.
type Entry struct {
	ReportID   uuid.UUID `json:"report_id"`
	ReportDate time.Time `json:"report_date"`
	Doctor     string    `json:"doctor"`
	Nurse      string    `json:"nurse"`
	Actions    []Action  `json:"actions"`
}

// Summary holds counts computed after gender filtering.
type Summary struct {
	TotalReports int      `json:"total_reports"`
	TotalActions int      `json:"total_actions"`
	Doctors      []string `json:"doctors"`
	Nurses       []string `json:"nurses"`
}

// Timeline is the assembled treatment history for one employee.
type Timeline struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Entries    []Entry   `json:"entries"`
	Summary    Summary   `json:"summary"`
}

// Snapshot is one historical report with the raw field maps of whatever
// domain records were captured for it.
type Snapshot struct {
	ReportID   uuid.UUID
	ReportDate time.Time
	Doctor     string
	Nurse      string
	Domains    map[string]map[string]any
}

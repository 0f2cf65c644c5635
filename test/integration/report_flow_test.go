package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/classify"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/report"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/timeline"
)

func newReportService() *report.Service {
	store := records.NewStorePG(globalDB.Pool)
	resolver := report.NewResolver(store, 3*time.Second, zerolog.Nop())
	return report.NewService(
		report.NewEmployeeRepoPG(globalDB.Pool),
		report.NewReportRepoPG(globalDB.Pool),
		resolver,
		zerolog.Nop(),
	)
}

func TestLatestRecordWins(t *testing.T) {
	ctx := context.Background()
	employeeID := seedEmployee(t, ctx, "male")

	base := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO lab_tests (employee_id, fasting_glucose, created_at) VALUES ($1, $2, $3)`,
		employeeID, 5.5, base)
	if err != nil {
		t.Fatal(err)
	}
	_, err = globalDB.Pool.Exec(ctx,
		`INSERT INTO lab_tests (employee_id, fasting_glucose, created_at) VALUES ($1, $2, $3)`,
		employeeID, 8.2, base.AddDate(0, 6, 0))
	if err != nil {
		t.Fatal(err)
	}

	store := records.NewStorePG(globalDB.Pool)
	rec, err := store.Latest(ctx, records.DomainLabTests, employeeID)
	if err != nil {
		t.Fatalf("latest lab record: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a lab record")
	}
	glucose, ok := classify.Float(rec.Value("fasting_glucose"))
	if !ok || glucose != 8.2 {
		t.Errorf("fasting_glucose = %v, want 8.2 (newest row)", rec.Value("fasting_glucose"))
	}
}

func TestLatestRecordAbsentDomain(t *testing.T) {
	ctx := context.Background()
	employeeID := seedEmployee(t, ctx, "female")

	store := records.NewStorePG(globalDB.Pool)
	rec, err := store.Latest(ctx, records.DomainMensHealth, employeeID)
	if err != nil {
		t.Fatalf("absence must not error: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record for empty domain, got %+v", rec)
	}
}

func TestComprehensiveReportEndToEnd(t *testing.T) {
	ctx := context.Background()
	employeeID := seedEmployee(t, ctx, "male")
	reportDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	reportID := seedReport(t, ctx, employeeID, reportDate, "Dr. van der Merwe")

	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO lab_tests (employee_id, report_id, full_blood_count, psa, fasting_glucose, created_at)
		 VALUES ($1, $2, 1, -1, 8.0, $3)`,
		employeeID, reportID, reportDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	_, err = globalDB.Pool.Exec(ctx,
		`INSERT INTO medical_history (employee_id, report_id, diabetes, family_heart_attack, created_at)
		 VALUES ($1, $2, true, false, $3)`,
		employeeID, reportID, reportDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	svc := newReportService()
	doc, err := svc.ComprehensiveReport(ctx, employeeID)
	if err != nil {
		t.Fatalf("comprehensive report: %v", err)
	}

	if doc.ReportHeading.ReportID != reportID {
		t.Errorf("report id = %s, want %s", doc.ReportHeading.ReportID, reportID)
	}
	if doc.LabTests.PSA != classify.Abnormal {
		t.Errorf("psa = %q, want %q", doc.LabTests.PSA, classify.Abnormal)
	}
	if doc.LabTests.FullBloodCount != classify.Normal {
		t.Errorf("full_blood_count = %q, want %q", doc.LabTests.FullBloodCount, classify.Normal)
	}
	if doc.MedicalHistory.Diabetes != classify.Yes {
		t.Errorf("diabetes = %q, want %q", doc.MedicalHistory.Diabetes, classify.Yes)
	}
	// No special investigations seeded at all.
	if doc.SpecialInvestigations.RestingECG != classify.NotDone {
		t.Errorf("resting_ecg = %q, want %q", doc.SpecialInvestigations.RestingECG, classify.NotDone)
	}
	if doc.Screening.ProstateScreening != classify.Required {
		t.Errorf("prostate screening = %q, want %q", doc.Screening.ProstateScreening, classify.Required)
	}
}

func TestGenderSectionsClassifyStoredExams(t *testing.T) {
	ctx := context.Background()
	reportDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	maleID := seedEmployee(t, ctx, "male")
	maleReport := seedReport(t, ctx, maleID, reportDate, "Dr. van der Merwe")
	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO mens_health (employee_id, report_id, prostate_exam, psa_discussed, created_at)
		 VALUES ($1, $2, 1, true, $3)`,
		maleID, maleReport, reportDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	femaleID := seedEmployee(t, ctx, "female")
	femaleReport := seedReport(t, ctx, femaleID, reportDate, "Dr. van der Merwe")
	_, err = globalDB.Pool.Exec(ctx,
		`INSERT INTO womens_health (employee_id, report_id, pap_smear, mammogram, breast_exam, created_at)
		 VALUES ($1, $2, 1, -1, 0, $3)`,
		femaleID, femaleReport, reportDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	svc := newReportService()

	// The stored tri-state values must survive the jsonb round trip and
	// classify, not degrade to Unknown.
	maleDoc, err := svc.ComprehensiveReport(ctx, maleID)
	if err != nil {
		t.Fatalf("male comprehensive report: %v", err)
	}
	if maleDoc.MensHealth.ProstateExam != classify.Normal {
		t.Errorf("prostate_exam = %q, want %q", maleDoc.MensHealth.ProstateExam, classify.Normal)
	}
	if maleDoc.MensHealth.PSADiscussed != classify.Yes {
		t.Errorf("psa_discussed = %q, want %q", maleDoc.MensHealth.PSADiscussed, classify.Yes)
	}

	femaleDoc, err := svc.ComprehensiveReport(ctx, femaleID)
	if err != nil {
		t.Fatalf("female comprehensive report: %v", err)
	}
	if femaleDoc.WomensHealth.PapSmear != classify.Normal {
		t.Errorf("pap_smear = %q, want %q", femaleDoc.WomensHealth.PapSmear, classify.Normal)
	}
	if femaleDoc.WomensHealth.Mammogram != classify.Abnormal {
		t.Errorf("mammogram = %q, want %q", femaleDoc.WomensHealth.Mammogram, classify.Abnormal)
	}
	if femaleDoc.WomensHealth.BreastExam != classify.NotDone {
		t.Errorf("breast_exam = %q, want %q", femaleDoc.WomensHealth.BreastExam, classify.NotDone)
	}
}

func TestComprehensiveReportNoReports(t *testing.T) {
	ctx := context.Background()
	employeeID := seedEmployee(t, ctx, "male")

	svc := newReportService()
	if _, err := svc.ComprehensiveReport(ctx, employeeID); !errors.Is(err, report.ErrNotFound) {
		t.Errorf("expected ErrNotFound for employee without reports, got %v", err)
	}
}

func TestTreatmentTimelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	employeeID := seedEmployee(t, ctx, "male")

	firstDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	secondDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	firstID := seedReport(t, ctx, employeeID, firstDate, "Dr. Adams")
	secondID := seedReport(t, ctx, employeeID, secondDate, "Dr. Brink")

	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO clinical_examinations (employee_id, report_id, recommendation, created_at)
		 VALUES ($1, $2, 'Follow up in 6 months', $3)`,
		employeeID, firstID, firstDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	_, err = globalDB.Pool.Exec(ctx,
		`INSERT INTO clinical_examinations (employee_id, report_id, recommendation, created_at)
		 VALUES ($1, $2, 'Refer to cardiologist', $3)`,
		employeeID, secondID, secondDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	// Women's health recommendation for a male employee: filtered at assembly.
	_, err = globalDB.Pool.Exec(ctx,
		`INSERT INTO womens_health (employee_id, report_id, recommendation, created_at)
		 VALUES ($1, $2, 'Annual mammogram advised', $3)`,
		employeeID, secondID, secondDate.Add(9*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	svc := timeline.NewService(
		timeline.NewHistoryStorePG(globalDB.Pool),
		timeline.NewGenderLookupPG(globalDB.Pool),
		zerolog.Nop(),
	)
	tl, err := svc.TreatmentTimeline(ctx, employeeID)
	if err != nil {
		t.Fatalf("treatment timeline: %v", err)
	}

	if len(tl.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(tl.Entries))
	}
	if tl.Entries[0].ReportID != firstID || tl.Entries[1].ReportID != secondID {
		t.Error("entries must be ordered by report date ascending")
	}
	if tl.Summary.TotalActions != 2 {
		t.Errorf("actions = %d, want 2 (womens health filtered)", tl.Summary.TotalActions)
	}
	if tl.Entries[1].Actions[0].Category != timeline.CategoryReferral {
		t.Errorf("category = %q, want %q", tl.Entries[1].Actions[0].Category, timeline.CategoryReferral)
	}
}

func TestTreatmentTimelineUnknownEmployeeEmpty(t *testing.T) {
	ctx := context.Background()

	svc := timeline.NewService(
		timeline.NewHistoryStorePG(globalDB.Pool),
		timeline.NewGenderLookupPG(globalDB.Pool),
		zerolog.Nop(),
	)
	tl, err := svc.TreatmentTimeline(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unknown employee must not error: %v", err)
	}
	if len(tl.Entries) != 0 {
		t.Errorf("expected empty timeline, got %d entries", len(tl.Entries))
	}
}

package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/classify"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
)

func testEmployee(gender string) *Employee {
	return &Employee{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		FirstName:   "Thabo",
		Surname:     "Nkosi",
		IDNumber:    "7801015009087",
		DateOfBirth: time.Date(1978, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      gender,
		Company:     "Atlega Mining",
		JobTitle:    "Operations Director",
	}
}

func testBaseReport() *MedicalReport {
	return &MedicalReport{
		ID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		EmployeeID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ReportDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		DoctorName: "Dr. van der Merwe",
		NurseName:  "Sr. Dlamini",
		ReportType: "Executive Medical",
		CreatedAt:  time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func rec(domain string, fields map[string]any) *records.Record {
	return &records.Record{
		Domain:    domain,
		Fields:    fields,
		CreatedAt: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestAssembleNoRecordsDefaultsEverything(t *testing.T) {
	doc, ambiguous := Assemble(testEmployee("male"), testBaseReport(), map[string]*records.Record{})

	if len(ambiguous) != 0 {
		t.Fatalf("expected no ambiguous fields, got %v", ambiguous)
	}

	si := doc.SpecialInvestigations
	for name, got := range map[string]string{
		"resting_ecg":          si.RestingECG,
		"stress_ecg":           si.StressECG,
		"chest_xray":           si.ChestXray,
		"lung_function":        si.LungFunction,
		"audiogram":            si.Audiogram,
		"abdominal_ultrasound": si.AbdominalUltrasound,
		"bone_density":         si.BoneDensity,
	} {
		if got != classify.NotDone {
			t.Errorf("%s = %q, want %q", name, got, classify.NotDone)
		}
	}

	if doc.LabTests.FullBloodCount != classify.NotDone {
		t.Errorf("full_blood_count = %q, want %q", doc.LabTests.FullBloodCount, classify.NotDone)
	}
	if doc.MedicalHistory.Diabetes != classify.Unknown {
		t.Errorf("diabetes = %q, want %q", doc.MedicalHistory.Diabetes, classify.Unknown)
	}
	if doc.MedicalHistory.FamilyHeartAttack != classify.No {
		t.Errorf("family_heart_attack = %q, want %q", doc.MedicalHistory.FamilyHeartAttack, classify.No)
	}
	if doc.ClinicalExaminations.BMI != nil {
		t.Errorf("bmi = %v, want nil", *doc.ClinicalExaminations.BMI)
	}

	if got := len(doc.CardiovascularRisk); got != 15 {
		t.Fatalf("cardio factors = %d, want 15", got)
	}
	if doc.Overview.AbnormalFindings != 0 {
		t.Errorf("abnormal findings = %d, want 0", doc.Overview.AbnormalFindings)
	}
	if doc.Overview.ScreeningsRequired != 0 {
		t.Errorf("screenings required = %d, want 0", doc.Overview.ScreeningsRequired)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	recs := map[string]*records.Record{
		records.DomainVitals: rec(records.DomainVitals, map[string]any{
			"height_cm": 178.0, "weight_kg": 92.5, "bmi": 29.2,
			"bmi_status": "Overweight", "blood_pressure": "142/95",
			"bp_status": "High", "pulse": 72.0,
		}),
		records.DomainLabTests: rec(records.DomainLabTests, map[string]any{
			"full_blood_count": 1.0, "psa": -1.0,
			"total_cholesterol": 5.4, "fasting_glucose": 8.0,
		}),
		records.DomainLifestyle: rec(records.DomainLifestyle, map[string]any{
			"diet_rating": "Good", "exercise": "Seldom", "smoker": true,
			"stress_score": 7.0,
		}),
	}

	first, _ := Assemble(testEmployee("male"), testBaseReport(), recs)
	second, _ := Assemble(testEmployee("male"), testBaseReport(), recs)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("assembling twice from identical inputs produced different documents")
	}
}

func TestAssembleClassifiesAndCounts(t *testing.T) {
	recs := map[string]*records.Record{
		records.DomainClinicalExamination: rec(records.DomainClinicalExamination, map[string]any{
			"cardiovascular": -1.0, "respiratory": 1.0, "skin": 0.0,
			"notes": "Mild hypertension noted.", "recommendation": "Repeat BP in two weeks",
		}),
		records.DomainLabTests: rec(records.DomainLabTests, map[string]any{
			"full_blood_count": 1.0, "hiv": 0.0, "psa": -1.0,
			"total_cholesterol": 5.4, "fasting_glucose": 8.0,
		}),
		records.DomainMedicalHistory: rec(records.DomainMedicalHistory, map[string]any{
			"diabetes": true, "high_blood_pressure": false,
		}),
		records.DomainScreening: rec(records.DomainScreening, map[string]any{
			"colonoscopy_required": true,
		}),
	}

	doc, _ := Assemble(testEmployee("male"), testBaseReport(), recs)

	if doc.ClinicalExaminations.Cardiovascular != classify.Abnormal {
		t.Errorf("cardiovascular = %q, want %q", doc.ClinicalExaminations.Cardiovascular, classify.Abnormal)
	}
	if doc.ClinicalExaminations.Respiratory != classify.Normal {
		t.Errorf("respiratory = %q, want %q", doc.ClinicalExaminations.Respiratory, classify.Normal)
	}
	if doc.ClinicalExaminations.Skin != classify.NotDone {
		t.Errorf("skin = %q, want %q", doc.ClinicalExaminations.Skin, classify.NotDone)
	}
	if doc.MedicalHistory.Diabetes != classify.Yes {
		t.Errorf("diabetes = %q, want %q", doc.MedicalHistory.Diabetes, classify.Yes)
	}

	// Abnormal: cardiovascular exam + PSA.
	if doc.Overview.AbnormalFindings != 2 {
		t.Errorf("abnormal findings = %d, want 2", doc.Overview.AbnormalFindings)
	}

	// Colonoscopy flagged plus prostate screening from the abnormal PSA.
	if doc.Screening.Colonoscopy != classify.Required {
		t.Errorf("colonoscopy = %q, want %q", doc.Screening.Colonoscopy, classify.Required)
	}
	if doc.Screening.ProstateScreening != classify.Required {
		t.Errorf("prostate screening = %q, want %q", doc.Screening.ProstateScreening, classify.Required)
	}
	if doc.Overview.ScreeningsRequired != 2 {
		t.Errorf("screenings required = %d, want 2", doc.Overview.ScreeningsRequired)
	}

	// Diabetes: glucose 8.0 and declared history both push At Risk.
	var diabetes *classify.RiskFactor
	for i := range doc.CardiovascularRisk {
		if doc.CardiovascularRisk[i].Dimension == "Diabetes" {
			diabetes = &doc.CardiovascularRisk[i]
		}
	}
	if diabetes == nil {
		t.Fatal("no Diabetes risk factor in cardio breakdown")
	}
	if diabetes.Band != classify.AtRisk {
		t.Errorf("diabetes band = %q, want %q", diabetes.Band, classify.AtRisk)
	}
}

func TestAssembleGenderSections(t *testing.T) {
	recs := map[string]*records.Record{
		records.DomainMensHealth: rec(records.DomainMensHealth, map[string]any{
			"prostate_exam": 1.0, "psa_discussed": true,
			"recommendation": "Annual PSA follow-up",
		}),
		records.DomainWomensHealth: rec(records.DomainWomensHealth, map[string]any{
			"pap_smear": 1.0, "mammogram": -1.0,
		}),
	}

	male, _ := Assemble(testEmployee("male"), testBaseReport(), recs)
	if male.MensHealth.ProstateExam != classify.Normal {
		t.Errorf("prostate exam = %q, want %q", male.MensHealth.ProstateExam, classify.Normal)
	}
	if male.WomensHealth != (WomensHealth{}) {
		t.Errorf("womens health populated for male employee: %+v", male.WomensHealth)
	}

	female, _ := Assemble(testEmployee("female"), testBaseReport(), recs)
	if female.WomensHealth.Mammogram != classify.Abnormal {
		t.Errorf("mammogram = %q, want %q", female.WomensHealth.Mammogram, classify.Abnormal)
	}
	if female.MensHealth != (MensHealth{}) {
		t.Errorf("mens health populated for female employee: %+v", female.MensHealth)
	}
}

func TestAssembleRecordsAmbiguousFreeText(t *testing.T) {
	recs := map[string]*records.Record{
		records.DomainLifestyle: rec(records.DomainLifestyle, map[string]any{
			"diet_rating": "mostly takeaways",
		}),
	}

	_, ambiguous := Assemble(testEmployee("male"), testBaseReport(), recs)

	if len(ambiguous) != 1 {
		t.Fatalf("ambiguous fields = %d, want 1", len(ambiguous))
	}
	if ambiguous[0].Field != "diet_rating" || ambiguous[0].Text != "mostly takeaways" {
		t.Errorf("unexpected ambiguous field: %+v", ambiguous[0])
	}
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1978, 6, 20, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2024, 6, 19, 0, 0, 0, 0, time.UTC), 45},
		{time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), 46},
		{time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), 46},
	}
	for _, tc := range cases {
		if got := ageAt(birth, tc.at); got != tc.want {
			t.Errorf("ageAt(%s) = %d, want %d", tc.at.Format("2006-01-02"), got, tc.want)
		}
	}

	if got := ageAt(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("future birth date: age = %d, want 0", got)
	}
}

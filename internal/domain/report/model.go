package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/classify"
)

// Employee maps to the employees table.
type Employee struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	Surname     string    `db:"surname" json:"surname"`
	IDNumber    string    `db:"id_number" json:"id_number"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender      string    `db:"gender" json:"gender"`
	Company     string    `db:"company" json:"company"`
	JobTitle    string    `db:"job_title" json:"job_title"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MedicalReport maps to the medical_reports table: one row per executive
// medical performed, carrying the visit metadata. The clinical content
// lives in the per-domain tables.
type MedicalReport struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employee_id"`
	ReportDate time.Time `db:"report_date" json:"report_date"`
	DoctorName string    `db:"doctor_name" json:"doctor_name"`
	NurseName  string    `db:"nurse_name" json:"nurse_name"`
	ReportType string    `db:"report_type" json:"report_type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ComprehensiveReport is the assembled read view for one employee. Shape and
// key names are a contract with the rendering layer; every key is always
// present, with missing domain data expressed through defaulted categories.
type ComprehensiveReport struct {
	ReportHeading         ReportHeading            `json:"report_heading"`
	PersonalDetails       PersonalDetails          `json:"personal_details"`
	ClinicalExaminations  ClinicalExaminations     `json:"clinical_examinations"`
	LabTests              LabTests                 `json:"lab_tests"`
	SpecialInvestigations SpecialInvestigations    `json:"special_investigations"`
	MedicalHistory        MedicalHistory           `json:"medical_history"`
	Allergies             Allergies                `json:"allergies"`
	CurrentMedication     CurrentMedication        `json:"current_medication"`
	Screening             classify.ScreeningPlan   `json:"screening"`
	MentalHealth          classify.MentalAssessment `json:"mental_health"`
	CardiovascularRisk    []classify.RiskFactor    `json:"cardiovascular_stroke_risk"`
	NotesRecommendations  NotesRecommendations     `json:"notes_recommendations"`
	MensHealth            MensHealth               `json:"mens_health"`
	WomensHealth          WomensHealth             `json:"womens_health"`
	Overview              Overview                 `json:"overview"`
	Disclaimer            string                   `json:"disclaimer"`
}

type ReportHeading struct {
	ReportID    uuid.UUID `json:"report_id"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Title       string    `json:"title"`
	ReportType  string    `json:"report_type"`
	ReportDate  time.Time `json:"report_date"`
	Doctor      string    `json:"doctor"`
	Nurse       string    `json:"nurse"`
	GeneratedAt time.Time `json:"generated_at"`
}

type PersonalDetails struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	IDNumber    string `json:"id_number"`
	DateOfBirth string `json:"date_of_birth"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// ClinicalExaminations carries the vitals measurements as raw pass-throughs
// and the per-system examination outcomes as normalized categories.
type ClinicalExaminations struct {
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	BMI           *float64 `json:"bmi"`
	BMIStatus     string   `json:"bmi_status"`
	BloodPressure string   `json:"blood_pressure"`
	BPStatus      string   `json:"bp_status"`
	Pulse         *float64 `json:"pulse"`
	WaistHipRatio *float64 `json:"waist_hip_ratio"`
	WHtRStatus    string   `json:"whtr_status"`

	GeneralAppearance string `json:"general_appearance"`
	HeadAndNeck       string `json:"head_and_neck"`
	Cardiovascular    string `json:"cardiovascular"`
	Respiratory       string `json:"respiratory"`
	Abdomen           string `json:"abdomen"`
	Musculoskeletal   string `json:"musculoskeletal"`
	Neurological      string `json:"neurological"`
	Skin              string `json:"skin"`
	Vision            string `json:"vision"`
	Hearing           string `json:"hearing"`
}

type LabTests struct {
	FullBloodCount   string   `json:"full_blood_count"`
	Urinalysis       string   `json:"urinalysis"`
	KidneyFunction   string   `json:"kidney_function"`
	LiverFunction    string   `json:"liver_function"`
	ThyroidFunction  string   `json:"thyroid_function"`
	HIV              string   `json:"hiv"`
	PSA              string   `json:"psa"`
	TotalCholesterol *float64 `json:"total_cholesterol"`
	FastingGlucose   *float64 `json:"fasting_glucose"`
}

type SpecialInvestigations struct {
	RestingECG          string `json:"resting_ecg"`
	StressECG           string `json:"stress_ecg"`
	ChestXray           string `json:"chest_xray"`
	LungFunction        string `json:"lung_function"`
	Audiogram           string `json:"audiogram"`
	AbdominalUltrasound string `json:"abdominal_ultrasound"`
	BoneDensity         string `json:"bone_density"`
}

type MedicalHistory struct {
	Diabetes               string `json:"diabetes"`
	HighBloodPressure      string `json:"high_blood_pressure"`
	HighCholesterol        string `json:"high_cholesterol"`
	Asthma                 string `json:"asthma"`
	Epilepsy               string `json:"epilepsy"`
	Tuberculosis           string `json:"tuberculosis"`
	FamilyHeartAttack      string `json:"family_heart_attack"`
	FamilyHeartAttackEarly string `json:"family_heart_attack_before_60"`
	FamilyCancer           string `json:"family_cancer"`
	SurgicalHistory        string `json:"surgical_history"`
}

type Allergies struct {
	Medication    string `json:"medication"`
	Food          string `json:"food"`
	Environmental string `json:"environmental"`
	Notes         string `json:"notes"`
}

type CurrentMedication struct {
	ChronicMedication string `json:"chronic_medication"`
	MedicationList    string `json:"medication_list"`
	Supplements       string `json:"supplements"`
}

type NotesRecommendations struct {
	DoctorNotes     string `json:"doctor_notes"`
	Recommendations string `json:"recommendations"`
}

// MensHealth is populated for male employees only; for everyone else it is
// present but empty.
type MensHealth struct {
	ProstateExam   string `json:"prostate_exam,omitempty"`
	PSADiscussed   string `json:"psa_discussed,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// WomensHealth is populated for female employees only; for everyone else it
// is present but empty.
type WomensHealth struct {
	PapSmear       string `json:"pap_smear,omitempty"`
	Mammogram      string `json:"mammogram,omitempty"`
	BreastExam     string `json:"breast_exam,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Overview summarizes the classified document for the dashboard tiles.
type Overview struct {
	AbnormalFindings   int `json:"abnormal_findings"`
	AtRiskFactors      int `json:"at_risk_factors"`
	ScreeningsRequired int `json:"screenings_required"`
}

// Disclaimer is the static closing text of every comprehensive report.
const Disclaimer = "This report reflects the information available at the time of the executive medical examination and is intended for occupational health purposes only. It does not replace consultation with a personal physician."

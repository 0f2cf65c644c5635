package report

import (
	"time"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/classify"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
)

// AmbiguousField records a free-text value that matched none of the keyword
// rules for its field. The value still classified to the fallback category;
// the record exists so the rule tables can be reviewed against real data.
type AmbiguousField struct {
	Domain string
	Field  string
	Text   string
}

// Assemble builds the comprehensive report from the employee row, the base
// report row, and whatever domain records resolved. It is deterministic:
// identical inputs produce an identical document, with GeneratedAt taken
// from the base row rather than the clock.
func Assemble(emp *Employee, base *MedicalReport, recs map[string]*records.Record) (*ComprehensiveReport, []AmbiguousField) {
	var ambiguous []AmbiguousField
	note := func(domain, field, text string, matched bool) {
		if text != "" && !matched {
			ambiguous = append(ambiguous, AmbiguousField{Domain: domain, Field: field, Text: text})
		}
	}

	vitals := recs[records.DomainVitals]
	exam := recs[records.DomainClinicalExamination]
	history := recs[records.DomainMedicalHistory]
	labs := recs[records.DomainLabTests]
	special := recs[records.DomainSpecialInvestigations]
	lifestyle := recs[records.DomainLifestyle]
	mental := recs[records.DomainMentalHealth]
	screening := recs[records.DomainScreening]

	doc := &ComprehensiveReport{
		ReportHeading: ReportHeading{
			ReportID:    base.ID,
			EmployeeID:  emp.ID,
			Title:       "Comprehensive Medical Report",
			ReportType:  base.ReportType,
			ReportDate:  base.ReportDate,
			Doctor:      base.DoctorName,
			Nurse:       base.NurseName,
			GeneratedAt: base.CreatedAt,
		},
		PersonalDetails: PersonalDetails{
			FirstName:   emp.FirstName,
			Surname:     emp.Surname,
			IDNumber:    emp.IDNumber,
			DateOfBirth: emp.DateOfBirth.Format("2006-01-02"),
			Age:         ageAt(emp.DateOfBirth, base.ReportDate),
			Gender:      emp.Gender,
			Company:     emp.Company,
			JobTitle:    emp.JobTitle,
			Email:       emp.Email,
			Phone:       emp.Phone,
		},
		ClinicalExaminations: ClinicalExaminations{
			HeightCM:      rawFloat(vitals, "height_cm"),
			WeightKG:      rawFloat(vitals, "weight_kg"),
			BMI:           rawFloat(vitals, "bmi"),
			BMIStatus:     vitals.Text("bmi_status"),
			BloodPressure: vitals.Text("blood_pressure"),
			BPStatus:      vitals.Text("bp_status"),
			Pulse:         rawFloat(vitals, "pulse"),
			WaistHipRatio: rawFloat(vitals, "waist_hip_ratio"),
			WHtRStatus:    vitals.Text("whtr_status"),

			GeneralAppearance: tri(exam, "general_appearance"),
			HeadAndNeck:       tri(exam, "head_and_neck"),
			Cardiovascular:    tri(exam, "cardiovascular"),
			Respiratory:       tri(exam, "respiratory"),
			Abdomen:           tri(exam, "abdomen"),
			Musculoskeletal:   tri(exam, "musculoskeletal"),
			Neurological:      tri(exam, "neurological"),
			Skin:              tri(exam, "skin"),
			Vision:            tri(exam, "vision"),
			Hearing:           tri(exam, "hearing"),
		},
		LabTests: LabTests{
			FullBloodCount:   tri(labs, "full_blood_count"),
			Urinalysis:       tri(labs, "urinalysis"),
			KidneyFunction:   tri(labs, "kidney_function"),
			LiverFunction:    tri(labs, "liver_function"),
			ThyroidFunction:  tri(labs, "thyroid_function"),
			HIV:              tri(labs, "hiv"),
			PSA:              tri(labs, "psa"),
			TotalCholesterol: rawFloat(labs, "total_cholesterol"),
			FastingGlucose:   rawFloat(labs, "fasting_glucose"),
		},
		SpecialInvestigations: SpecialInvestigations{
			RestingECG:          tri(special, "resting_ecg"),
			StressECG:           tri(special, "stress_ecg"),
			ChestXray:           tri(special, "chest_xray"),
			LungFunction:        tri(special, "lung_function"),
			Audiogram:           tri(special, "audiogram"),
			AbdominalUltrasound: tri(special, "abdominal_ultrasound"),
			BoneDensity:         tri(special, "bone_density"),
		},
		MedicalHistory: MedicalHistory{
			Diabetes:               classify.Flag(history.Value("diabetes")),
			HighBloodPressure:      classify.Flag(history.Value("high_blood_pressure")),
			HighCholesterol:        classify.Flag(history.Value("high_cholesterol")),
			Asthma:                 classify.Flag(history.Value("asthma")),
			Epilepsy:               classify.Flag(history.Value("epilepsy")),
			Tuberculosis:           classify.Flag(history.Value("tuberculosis")),
			FamilyHeartAttack:      classify.FlagDefaultNo(history.Value("family_heart_attack")),
			FamilyHeartAttackEarly: classify.FlagDefaultNo(history.Value("family_heart_attack_before_60")),
			FamilyCancer:           classify.FlagDefaultNo(history.Value("family_cancer")),
			SurgicalHistory:        history.Text("surgical_history"),
		},
		Allergies: Allergies{
			Medication:    classify.Flag(history.Value("allergy_medication")),
			Food:          classify.Flag(history.Value("allergy_food")),
			Environmental: classify.Flag(history.Value("allergy_environmental")),
			Notes:         history.Text("allergy_notes"),
		},
		CurrentMedication: CurrentMedication{
			ChronicMedication: classify.Flag(history.Value("chronic_medication")),
			MedicationList:    history.Text("medication_list"),
			Supplements:       history.Text("supplements"),
		},
		NotesRecommendations: NotesRecommendations{
			DoctorNotes:     exam.Text("notes"),
			Recommendations: exam.Text("recommendation"),
		},
		Disclaimer: Disclaimer,
	}

	// Lifestyle free text feeds the cardio factors; record unmatched
	// wording for rule review before classifying.
	dietText := lifestyle.Text("diet_rating")
	_, dietMatched := classify.DietBand(dietText)
	note(records.DomainLifestyle, "diet_rating", dietText, dietMatched)

	exerciseText := lifestyle.Text("exercise")
	_, exerciseMatched := classify.ExerciseBand(exerciseText)
	note(records.DomainLifestyle, "exercise", exerciseText, exerciseMatched)

	stressScore, _ := classify.Float(lifestyle.Value("stress_score"))
	alcoholScore, _ := classify.Float(lifestyle.Value("alcohol_score"))

	doc.CardiovascularRisk = classify.CardioRiskFactors(classify.CardioInputs{
		Age:                    doc.PersonalDetails.Age,
		Gender:                 emp.Gender,
		BPStatus:               vitals.Text("bp_status"),
		TotalCholesterol:       rawFloat(labs, "total_cholesterol"),
		FastingGlucose:         rawFloat(labs, "fasting_glucose"),
		DiabetesHistory:        classify.IsSet(history.Value("diabetes")),
		BMIStatus:              vitals.Text("bmi_status"),
		WaistHeightStatus:      vitals.Text("whtr_status"),
		DietRating:             dietText,
		ExerciseText:           exerciseText,
		AlcoholScore:           alcoholScore,
		Smoker:                 classify.IsSet(lifestyle.Value("smoker")),
		StressScore:            stressScore,
		HighBPHistory:          classify.IsSet(history.Value("high_blood_pressure")),
		HighCholesterolHistory: classify.IsSet(history.Value("high_cholesterol")),
		FamilyHeartAttack:      classify.IsSet(history.Value("family_heart_attack")),
		FamilyHeartAttackEarly: classify.IsSet(history.Value("family_heart_attack_before_60")),
		FamilyCancer:           classify.IsSet(history.Value("family_cancer")),
	})

	moodText := mental.Text("mood")
	_, moodMatched := classify.MoodCategory(moodText)
	note(records.DomainMentalHealth, "mood", moodText, moodMatched)

	sleepText := mental.Text("sleep_rating")
	_, sleepMatched := classify.SleepCategory(sleepText)
	note(records.DomainMentalHealth, "sleep_rating", sleepText, sleepMatched)

	anxiety, _ := classify.Float(mental.Value("anxiety_score"))
	energy, _ := classify.Float(mental.Value("energy_score"))
	mentalStress, _ := classify.Float(mental.Value("stress_score"))

	doc.MentalHealth = classify.MentalHealthBands(classify.MentalInputs{
		AnxietyScore: anxiety,
		EnergyScore:  energy,
		StressScore:  mentalStress,
		MoodText:     moodText,
		SleepText:    sleepText,
	})

	doc.Screening = classify.ScreeningRequirements(classify.ScreeningInputs{
		AbdominalUltrasound: classify.IsSet(screening.Value("abdominal_ultrasound_required")),
		Colonoscopy:         classify.IsSet(screening.Value("colonoscopy_required")),
		Gastroscopy:         classify.IsSet(screening.Value("gastroscopy_required")),
		BoneDensity:         classify.IsSet(screening.Value("bone_density_required")),
		PSAResult:           labs.Value("psa"),
	})

	// Gender-specific sections: populated for the matching gender only,
	// empty (but present) for the other.
	switch emp.Gender {
	case "male":
		mens := recs[records.DomainMensHealth]
		doc.MensHealth = MensHealth{
			ProstateExam:   tri(mens, "prostate_exam"),
			PSADiscussed:   classify.Flag(mens.Value("psa_discussed")),
			Recommendation: mens.Text("recommendation"),
		}
	case "female":
		womens := recs[records.DomainWomensHealth]
		doc.WomensHealth = WomensHealth{
			PapSmear:       tri(womens, "pap_smear"),
			Mammogram:      tri(womens, "mammogram"),
			BreastExam:     tri(womens, "breast_exam"),
			Recommendation: womens.Text("recommendation"),
		}
	}

	doc.Overview = buildOverview(doc)

	return doc, ambiguous
}

func buildOverview(doc *ComprehensiveReport) Overview {
	var o Overview

	triStates := []string{
		doc.ClinicalExaminations.GeneralAppearance, doc.ClinicalExaminations.HeadAndNeck,
		doc.ClinicalExaminations.Cardiovascular, doc.ClinicalExaminations.Respiratory,
		doc.ClinicalExaminations.Abdomen, doc.ClinicalExaminations.Musculoskeletal,
		doc.ClinicalExaminations.Neurological, doc.ClinicalExaminations.Skin,
		doc.ClinicalExaminations.Vision, doc.ClinicalExaminations.Hearing,
		doc.LabTests.FullBloodCount, doc.LabTests.Urinalysis, doc.LabTests.KidneyFunction,
		doc.LabTests.LiverFunction, doc.LabTests.ThyroidFunction, doc.LabTests.HIV,
		doc.LabTests.PSA,
		doc.SpecialInvestigations.RestingECG, doc.SpecialInvestigations.StressECG,
		doc.SpecialInvestigations.ChestXray, doc.SpecialInvestigations.LungFunction,
		doc.SpecialInvestigations.Audiogram, doc.SpecialInvestigations.AbdominalUltrasound,
		doc.SpecialInvestigations.BoneDensity,
	}
	for _, v := range triStates {
		if v == classify.Abnormal {
			o.AbnormalFindings++
		}
	}

	for _, f := range doc.CardiovascularRisk {
		if f.Band == classify.AtRisk {
			o.AtRiskFactors++
		}
	}

	for _, v := range []string{
		doc.Screening.AbdominalUltrasound, doc.Screening.Colonoscopy,
		doc.Screening.Gastroscopy, doc.Screening.BoneDensity,
		doc.Screening.ProstateScreening,
	} {
		if v == classify.Required {
			o.ScreeningsRequired++
		}
	}

	return o
}

// ageAt computes whole years between birth and the reference date, so the
// age printed on a report never shifts after the fact.
func ageAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// tri normalizes a tri-state examination field. An absent domain record
// means the whole battery was never performed, so every field reads
// Not Done; a present record with a null or malformed value reads Unknown.
func tri(rec *records.Record, field string) string {
	if rec == nil {
		return classify.NotDone
	}
	return classify.TriState(rec.Value(field))
}

func rawFloat(rec *records.Record, field string) *float64 {
	v, ok := classify.Float(rec.Value(field))
	if !ok {
		return nil
	}
	return &v
}

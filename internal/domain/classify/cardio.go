package classify

// RiskFactor is one classified health dimension with the raw inputs that
// drove the band, kept for display and audit.
type RiskFactor struct {
	Dimension string         `json:"dimension"`
	Band      string         `json:"band"`
	Inputs    map[string]any `json:"inputs,omitempty"`
}

// CardioInputs carries the raw values feeding the cardiovascular and stroke
// risk factors. Pointer fields distinguish a measured zero from a missing
// measurement; a missing measurement never puts the employee at risk.
type CardioInputs struct {
	Age    int
	Gender string // "male" or "female"

	BPStatus          string // from vitals, e.g. "High"
	TotalCholesterol  *float64
	FastingGlucose    *float64
	DiabetesHistory   bool
	BMIStatus         string // e.g. "Obese"
	WaistHeightStatus string // e.g. "High"

	DietRating   string
	ExerciseText string
	AlcoholScore float64
	Smoker       bool
	StressScore  float64

	HighBPHistory          bool
	HighCholesterolHistory bool
	FamilyHeartAttack      bool
	FamilyHeartAttackEarly bool
	FamilyCancer           bool
}

// Cardiovascular thresholds. Cholesterol and glucose are mmol/L.
const (
	cardioRiskAge      = 45
	cholesterolCutoff  = 5.0
	fastingGlucoseHigh = 7.0
)

var (
	dietClassifier = NewKeywordClassifier(AtRisk,
		KeywordRule{Match: "good", Category: LowRisk},
	)

	exerciseClassifier = NewKeywordClassifier(LowRisk,
		KeywordRule{Match: "don't exercise", Category: AtRisk},
		KeywordRule{Match: "seldom", Category: AtRisk},
	)

	stressScale = Scale{
		Bands: []Band{{3, LowRisk}, {6, MediumRisk}},
		Top:   AtRisk,
	}
)

// DietBand classifies the diet self-rating, reporting whether any rule
// matched so callers can flag unreviewed wording.
func DietBand(text string) (string, bool) { return dietClassifier.Classify(text) }

// ExerciseBand classifies the exercise-frequency description.
func ExerciseBand(text string) (string, bool) { return exerciseClassifier.Classify(text) }

func atRiskWhen(cond bool) string {
	if cond {
		return AtRisk
	}
	return LowRisk
}

// CardioRiskFactors classifies each cardiovascular/stroke dimension
// independently and returns them in their fixed display order.
func CardioRiskFactors(in CardioInputs) []RiskFactor {
	factors := make([]RiskFactor, 0, 15)

	factors = append(factors, RiskFactor{
		Dimension: "Age & Gender",
		Band:      atRiskWhen(in.Age >= cardioRiskAge || in.Gender == "male"),
		Inputs:    map[string]any{"age": in.Age, "gender": in.Gender},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Blood Pressure",
		Band:      atRiskWhen(in.BPStatus == "High"),
		Inputs:    map[string]any{"bp_status": in.BPStatus},
	})

	cholesterol := RiskFactor{Dimension: "Cholesterol", Band: LowRisk}
	if in.TotalCholesterol != nil {
		cholesterol.Band = atRiskWhen(*in.TotalCholesterol > cholesterolCutoff)
		cholesterol.Inputs = map[string]any{"total_cholesterol": *in.TotalCholesterol}
	}
	factors = append(factors, cholesterol)

	diabetes := RiskFactor{
		Dimension: "Diabetes",
		Band:      atRiskWhen(in.DiabetesHistory),
		Inputs:    map[string]any{"diabetes_history": in.DiabetesHistory},
	}
	if in.FastingGlucose != nil {
		diabetes.Band = atRiskWhen(*in.FastingGlucose >= fastingGlucoseHigh || in.DiabetesHistory)
		diabetes.Inputs["fasting_glucose"] = *in.FastingGlucose
	}
	factors = append(factors, diabetes)

	factors = append(factors, RiskFactor{
		Dimension: "Obesity",
		Band:      atRiskWhen(in.BMIStatus == "Obese"),
		Inputs:    map[string]any{"bmi_status": in.BMIStatus},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Waist-to-Hip Ratio",
		Band:      atRiskWhen(in.WaistHeightStatus == "High"),
		Inputs:    map[string]any{"whtr_status": in.WaistHeightStatus},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Diet",
		Band:      dietClassifier.Category(in.DietRating),
		Inputs:    map[string]any{"diet_rating": in.DietRating},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Exercise",
		Band:      exerciseClassifier.Category(in.ExerciseText),
		Inputs:    map[string]any{"exercise": in.ExerciseText},
	})

	alcoholBand := NoRisk
	if in.AlcoholScore > 0 {
		alcoholBand = AtRisk
	}
	factors = append(factors, RiskFactor{
		Dimension: "Alcohol",
		Band:      alcoholBand,
		Inputs:    map[string]any{"alcohol_score": in.AlcoholScore},
	})

	smokingBand := NoRisk
	if in.Smoker {
		smokingBand = AtRisk
	}
	factors = append(factors, RiskFactor{
		Dimension: "Smoking",
		Band:      smokingBand,
		Inputs:    map[string]any{"smoker": in.Smoker},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Stress",
		Band:      stressScale.Of(in.StressScore),
		Inputs:    map[string]any{"stress_score": in.StressScore},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Prior Cardiac Indicators",
		Band:      atRiskWhen(in.HighBPHistory || in.HighCholesterolHistory),
		Inputs: map[string]any{
			"high_bp_history":          in.HighBPHistory,
			"high_cholesterol_history": in.HighCholesterolHistory,
		},
	})

	factors = append(factors, RiskFactor{
		Dimension: "Family Heart History",
		Band:      atRiskWhen(in.FamilyHeartAttack || in.FamilyHeartAttackEarly),
		Inputs: map[string]any{
			"family_heart_attack":       in.FamilyHeartAttack,
			"family_heart_attack_early": in.FamilyHeartAttackEarly,
		},
	})

	// The source data has no dedicated family stroke field; the family
	// cancer flag stands in for it. Kept until the upstream model grows a
	// proper field.
	factors = append(factors, RiskFactor{
		Dimension: "Family Stroke History",
		Band:      atRiskWhen(in.FamilyCancer),
		Inputs:    map[string]any{"family_cancer": in.FamilyCancer},
	})

	// Reynolds score not computed yet; placeholder band.
	factors = append(factors, RiskFactor{
		Dimension: "Reynolds Risk Score",
		Band:      LowRisk,
	})

	return factors
}

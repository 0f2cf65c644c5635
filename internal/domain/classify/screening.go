package classify

// ScreeningInputs carries the screening flags for an employee. PSAResult is
// the raw tri-state value from the lab tests domain.
type ScreeningInputs struct {
	AbdominalUltrasound bool
	Colonoscopy         bool
	Gastroscopy         bool
	BoneDensity         bool
	PSAResult           any
}

// ScreeningPlan is the screening section of the report.
type ScreeningPlan struct {
	AbdominalUltrasound string `json:"abdominal_ultrasound"`
	Colonoscopy         string `json:"colonoscopy"`
	Gastroscopy         string `json:"gastroscopy"`
	BoneDensity         string `json:"bone_density"`
	ProstateScreening   string `json:"prostate_screening"`
}

func requiredWhen(cond bool) string {
	if cond {
		return Required
	}
	return NotRequired
}

// ScreeningRequirements maps each screening flag to Required/Not Required.
// Prostate screening is required when the PSA result normalizes to Abnormal.
func ScreeningRequirements(in ScreeningInputs) ScreeningPlan {
	return ScreeningPlan{
		AbdominalUltrasound: requiredWhen(in.AbdominalUltrasound),
		Colonoscopy:         requiredWhen(in.Colonoscopy),
		Gastroscopy:         requiredWhen(in.Gastroscopy),
		BoneDensity:         requiredWhen(in.BoneDensity),
		ProstateScreening:   requiredWhen(TriState(in.PSAResult) == Abnormal),
	}
}

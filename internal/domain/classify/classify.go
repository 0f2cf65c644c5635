// Package classify normalizes raw clinical values into the fixed category
// vocabulary of the comprehensive medical report and derives risk bands
// from them. Every function here is pure and total: any input, including a
// missing one, maps to a category from the closed set for that dimension.
//
// The literal category strings are a contract with the rendering layer,
// which branches on them directly. Do not change them.
package classify

// Tri-state examination/test outcomes.
const (
	Normal   = "Normal"
	Abnormal = "Abnormal"
	NotDone  = "Not Done"
	Unknown  = "Unknown"
)

// Boolean flag categories.
const (
	Yes = "Yes"
	No  = "No"
)

// Cardiovascular and stroke risk bands.
const (
	AtRisk     = "At Risk"
	LowRisk    = "Low Risk"
	MediumRisk = "Medium Risk"
	NoRisk     = "No Risk"
)

// Mental-health severity levels.
const (
	LevelLow    = "LOW"
	LevelMedium = "MEDIUM"
	LevelHigh   = "HIGH"
)

// Mood and sleep categories.
const (
	MoodPositive = "POSITIVE"
	MoodNegative = "NEGATIVE"
	MoodUnknown  = "UNKNOWN"

	SleepGood    = "GOOD"
	SleepFair    = "FAIR"
	SleepPoor    = "POOR"
	SleepUnknown = "UNKNOWN"
)

// Screening requirement labels.
const (
	Required    = "Required"
	NotRequired = "Not Required"
)

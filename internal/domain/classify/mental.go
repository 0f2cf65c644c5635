package classify

// MentalInputs carries the mental-health screening scores and free-text
// self-ratings. Missing scores read as zero, which bands to the lowest
// severity.
type MentalInputs struct {
	AnxietyScore float64 // 2-item screen, 0-6
	EnergyScore  float64 // 0-10
	StressScore  float64 // 0-10
	MoodText     string
	SleepText    string
}

// MentalAssessment is the banded mental-health section of the report.
type MentalAssessment struct {
	Anxiety string `json:"anxiety"`
	Energy  string `json:"energy"`
	Stress  string `json:"stress"`
	Mood    string `json:"mood"`
	Sleep   string `json:"sleep"`
}

var (
	anxietyScale = Scale{
		Bands: []Band{{2, LevelLow}, {4, LevelMedium}},
		Top:   LevelHigh,
	}

	// Energy and stress share the 0-10 self-rating scale.
	severityScale = Scale{
		Bands: []Band{{3, LevelLow}, {6, LevelMedium}},
		Top:   LevelHigh,
	}

	moodClassifier = NewKeywordClassifier(MoodUnknown,
		KeywordRule{Match: "not at all", Category: MoodPositive},
		KeywordRule{Match: "several days", Category: MoodNegative},
		KeywordRule{Match: "more than half", Category: MoodNegative},
	)

	sleepClassifier = NewKeywordClassifier(SleepUnknown,
		KeywordRule{Match: "good", Category: SleepGood},
		KeywordRule{Match: "fair", Category: SleepFair},
		KeywordRule{Match: "poor", Category: SleepPoor},
	)
)

// MoodCategory classifies the mood description, reporting whether any rule
// matched.
func MoodCategory(text string) (string, bool) { return moodClassifier.Classify(text) }

// SleepCategory classifies the sleep self-rating.
func SleepCategory(text string) (string, bool) { return sleepClassifier.Classify(text) }

// MentalHealthBands classifies each mental-health dimension independently.
func MentalHealthBands(in MentalInputs) MentalAssessment {
	return MentalAssessment{
		Anxiety: anxietyScale.Of(in.AnxietyScore),
		Energy:  severityScale.Of(in.EnergyScore),
		Stress:  severityScale.Of(in.StressScore),
		Mood:    moodClassifier.Category(in.MoodText),
		Sleep:   sleepClassifier.Category(in.SleepText),
	}
}

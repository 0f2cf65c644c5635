package timeline

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/classify"
	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
)

// actionSource names a free-text field that yields recommendations, and the
// category an action falls back to when no keyword matches.
type actionSource struct {
	Domain   string
	Field    string
	Fallback string
}

// Evaluated in domain order per snapshot so action order inside an entry is
// stable.
var actionSources = []actionSource{
	{records.DomainClinicalExamination, "recommendation", CategoryClinical},
	{records.DomainLabTests, "recommendation", CategoryMonitoring},
	{records.DomainSpecialInvestigations, "recommendation", CategoryScreening},
	{records.DomainLifestyle, "recommendation", CategoryLifestyle},
	{records.DomainMentalHealth, "recommendation", CategoryClinical},
	{records.DomainScreening, "recommendation", CategoryScreening},
	{records.DomainMensHealth, "recommendation", CategoryMensHealth},
	{records.DomainWomensHealth, "recommendation", CategoryWomensHealth},
}

// Keyword rules shared by every source; first match wins, so the
// gender-specific rules sit ahead of the generic screening ones
// ("mammogram" must not fall through to Screening).
var actionClassifier = classify.NewKeywordClassifier("",
	classify.KeywordRule{Match: "pap smear", Category: CategoryWomensHealth},
	classify.KeywordRule{Match: "mammogram", Category: CategoryWomensHealth},
	classify.KeywordRule{Match: "gynae", Category: CategoryWomensHealth},
	classify.KeywordRule{Match: "prostate", Category: CategoryMensHealth},
	classify.KeywordRule{Match: "psa", Category: CategoryMensHealth},
	classify.KeywordRule{Match: "refer", Category: CategoryReferral},
	classify.KeywordRule{Match: "follow up", Category: CategoryFollowUp},
	classify.KeywordRule{Match: "follow-up", Category: CategoryFollowUp},
	classify.KeywordRule{Match: "review in", Category: CategoryFollowUp},
	classify.KeywordRule{Match: "monitor", Category: CategoryMonitoring},
	classify.KeywordRule{Match: "repeat", Category: CategoryMonitoring},
	classify.KeywordRule{Match: "recheck", Category: CategoryMonitoring},
	classify.KeywordRule{Match: "colonoscopy", Category: CategoryScreening},
	classify.KeywordRule{Match: "gastroscopy", Category: CategoryScreening},
	classify.KeywordRule{Match: "ultrasound", Category: CategoryScreening},
	classify.KeywordRule{Match: "screen", Category: CategoryScreening},
	classify.KeywordRule{Match: "diet", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "exercise", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "weight", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "alcohol", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "smoking", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "sleep", Category: CategoryLifestyle},
	classify.KeywordRule{Match: "stress", Category: CategoryLifestyle},
)

// CategorizeAction tags one recommendation text, falling back to the
// source's default category when no keyword matches.
func CategorizeAction(text, fallback string) string {
	if category, matched := actionClassifier.Classify(text); matched {
		return category
	}
	return fallback
}

// Build assembles the treatment timeline from historical snapshots, already
// ordered by date. Gender filtering happens here, not in storage, and the
// summary counts reflect the filtered result.
func Build(employeeID uuid.UUID, gender string, snapshots []*Snapshot) *Timeline {
	entries := make([]Entry, 0, len(snapshots))
	summary := Summary{}
	doctors := make(map[string]bool)
	nurses := make(map[string]bool)

	for _, snap := range snapshots {
		entry := Entry{
			ReportID:   snap.ReportID,
			ReportDate: snap.ReportDate,
			Doctor:     snap.Doctor,
			Nurse:      snap.Nurse,
			Actions:    []Action{},
		}

		for _, src := range actionSources {
			fields := snap.Domains[src.Domain]
			if fields == nil {
				continue
			}
			text, _ := fields[src.Field].(string)
			if text == "" {
				continue
			}

			category := CategorizeAction(text, src.Fallback)
			if excludedForGender(category, gender) {
				continue
			}

			status, _ := fields["recommendation_status"].(string)
			if status == "" {
				status = StatusRecommended
			}

			entry.Actions = append(entry.Actions, Action{
				Category:       category,
				Recommendation: text,
				Status:         status,
				SourceField:    src.Domain + "." + src.Field,
				ReportDate:     snap.ReportDate,
			})
		}

		entries = append(entries, entry)
		summary.TotalActions += len(entry.Actions)
		if snap.Doctor != "" {
			doctors[snap.Doctor] = true
		}
		if snap.Nurse != "" {
			nurses[snap.Nurse] = true
		}
	}

	summary.TotalReports = len(entries)
	summary.Doctors = sortedKeys(doctors)
	summary.Nurses = sortedKeys(nurses)

	return &Timeline{EmployeeID: employeeID, Entries: entries, Summary: summary}
}

func excludedForGender(category, gender string) bool {
	switch gender {
	case "male":
		return category == CategoryWomensHealth
	case "female":
		return category == CategoryMensHealth
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

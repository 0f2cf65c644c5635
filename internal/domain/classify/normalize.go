package classify

import "strings"

// TriState maps the stored 1 / -1 / 0 convention used across examination and
// test columns: 1 is Normal, -1 is Abnormal, 0 is Not Done. Anything else,
// including a missing value, is Unknown. Values decoded from jsonb arrive as
// float64.
func TriState(v any) string {
	n, ok := asInt(v)
	if !ok {
		return Unknown
	}
	switch n {
	case 1:
		return Normal
	case -1:
		return Abnormal
	case 0:
		return NotDone
	}
	return Unknown
}

// Flag maps a stored boolean to Yes/No, with Unknown for a missing or
// non-boolean value.
func Flag(v any) string {
	b, ok := v.(bool)
	if !ok {
		return Unknown
	}
	if b {
		return Yes
	}
	return No
}

// FlagDefaultNo is the two-valued variant for sources that store false as
// absence: anything that is not true reads as No.
func FlagDefaultNo(v any) string {
	if b, ok := v.(bool); ok && b {
		return Yes
	}
	return No
}

// IsSet reports whether a raw flag value is true. Missing and non-boolean
// values read as false.
func IsSet(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// Float extracts a numeric value from a raw field. Unparseable and missing
// values report ok=false.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// KeywordRule maps a substring to a category.
type KeywordRule struct {
	Match    string
	Category string
}

// KeywordClassifier assigns a category to free text by case-insensitive
// substring match. Rules are evaluated in order and the first match wins;
// preserve rule order when editing, since two rules may match the same text.
type KeywordClassifier struct {
	rules    []KeywordRule
	fallback string
}

func NewKeywordClassifier(fallback string, rules ...KeywordRule) *KeywordClassifier {
	lowered := make([]KeywordRule, len(rules))
	for i, r := range rules {
		lowered[i] = KeywordRule{Match: strings.ToLower(r.Match), Category: r.Category}
	}
	return &KeywordClassifier{rules: lowered, fallback: fallback}
}

// Classify returns the category for text and whether any rule matched.
// Unmatched text falls back to the classifier's default category; callers
// that care about rule-table coverage should record the miss.
func (k *KeywordClassifier) Classify(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, r := range k.rules {
		if strings.Contains(lowered, r.Match) {
			return r.Category, true
		}
	}
	return k.fallback, false
}

// Category is Classify without the match report.
func (k *KeywordClassifier) Category(text string) string {
	c, _ := k.Classify(text)
	return c
}

// Band is one step of an ascending numeric scale.
type Band struct {
	UpperBound float64
	Label      string
}

// Scale bands a numeric value: the first band whose upper bound the value
// does not exceed wins, and a value above every bound lands in Top.
type Scale struct {
	Bands []Band
	Top   string
}

func (s Scale) Of(v float64) string {
	for _, b := range s.Bands {
		if v <= b.UpperBound {
			return b.Label
		}
	}
	return s.Top
}

// OfRaw bands a raw field value, treating a missing or non-numeric value
// as zero so the result stays inside the scale's closed set.
func (s Scale) OfRaw(v any) string {
	n, _ := Float(v)
	return s.Of(n)
}

package risk

import "strings"

// RiskResult holds one condition's score: the clamped risk percentage and
// the triggered modifier labels that contributed the most, ranked by weight.
type RiskResult struct {
	Condition      string   `json:"condition"`
	RiskPercentage float64  `json:"risk_percentage"`
	KeyFactors     []string `json:"key_factors"`
}

// AssessmentReport collects every condition's result in the fixed condition
// order (ConditionOrder), so downstream consumers can rely on a stable
// presentation order regardless of input values.
type AssessmentReport struct {
	Results []RiskResult `json:"results"`
}

// Get returns the result for a condition identifier, if present.
func (r *AssessmentReport) Get(condition string) (RiskResult, bool) {
	for _, res := range r.Results {
		if res.Condition == condition {
			return res, true
		}
	}
	return RiskResult{}, false
}

// DisplayName converts a condition identifier into the capitalized title the
// presentation layer renders, e.g. "type_2_diabetes" -> "Type 2 Diabetes".
func DisplayName(condition string) string {
	words := strings.Split(condition, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

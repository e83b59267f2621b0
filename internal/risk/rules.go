package risk

import "sort"

// Scorer maps a PatientRecord to one condition's RiskResult. Scorers are
// independent pure functions: no shared state, no ordering dependence.
type Scorer interface {
	Condition() string
	Score(rec PatientRecord) (RiskResult, error)
}

// rule is one modifier in a weighted-factor model. weight returns the points
// the rule adds for this record; zero means the rule did not trigger. Rules
// are declared in a fixed order, which doubles as the key-factor tie-break.
type rule struct {
	label  string
	weight func(rec PatientRecord) float64
}

// when builds a fixed-weight rule from a predicate.
func when(label string, points float64, pred func(rec PatientRecord) bool) rule {
	return rule{label: label, weight: func(rec PatientRecord) float64 {
		if pred(rec) {
			return points
		}
		return 0
	}}
}

// graded builds a rule whose weight depends on the field value (banded
// thresholds, ordinal levels).
func graded(label string, weight func(rec PatientRecord) float64) rule {
	return rule{label: label, weight: weight}
}

// weightedModel is the shared scorer shape: a condition-specific base risk
// from age and gender, plus an ordered modifier list. The combined score is
// base + sum of triggered weights, clamped to [0, 100]. Key factors are the
// top-N triggered labels by weight, ties broken by declaration order.
type weightedModel struct {
	condition string
	topN      int
	base      func(rec PatientRecord) float64
	rules     []rule
}

func (m weightedModel) Condition() string {
	return m.condition
}

func (m weightedModel) Score(rec PatientRecord) (RiskResult, error) {
	if !rec.normalized {
		return RiskResult{}, &ScoringError{
			Condition: m.condition,
			Reason:    "record was not built by NewPatientRecord",
		}
	}

	type triggered struct {
		label  string
		weight float64
	}

	score := m.base(rec)
	var hits []triggered
	for _, r := range m.rules {
		w := r.weight(rec)
		if w <= 0 {
			continue
		}
		score += w
		hits = append(hits, triggered{label: r.label, weight: w})
	}

	// Stable sort keeps declaration order among equal weights.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].weight > hits[j].weight
	})

	n := m.topN
	if n > len(hits) {
		n = len(hits)
	}
	factors := make([]string, 0, n)
	for _, h := range hits[:n] {
		factors = append(factors, h.label)
	}

	return RiskResult{
		Condition:      m.condition,
		RiskPercentage: clamp(score, 0, 100),
		KeyFactors:     factors,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ageBand maps age to banded points, shared by several scorers. The bands
// step per decade from the given starting decade.
func ageBand(age int, firstDecade int, perDecade float64, limit float64) float64 {
	if age < firstDecade {
		return 0
	}
	decades := float64((age-firstDecade)/10 + 1)
	points := decades * perDecade
	if points > limit {
		return limit
	}
	return points
}

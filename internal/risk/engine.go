package risk

import (
	"fmt"
	"sync"
)

// Condition identifiers. ConditionOrder below is the fixed report order;
// it is part of the external contract and must not change between releases.
const (
	ConditionType2Diabetes        = "type_2_diabetes"
	ConditionHypertension         = "hypertension"
	ConditionCardiovascular       = "cardiovascular_disease"
	ConditionDepressionRelapse    = "depression_relapse"
	ConditionCancerPredisposition = "cancer_predisposition"
)

// ConditionOrder is the documented presentation order of the report.
var ConditionOrder = []string{
	ConditionType2Diabetes,
	ConditionHypertension,
	ConditionCardiovascular,
	ConditionDepressionRelapse,
	ConditionCancerPredisposition,
}

// Engine runs every registered condition scorer against one PatientRecord
// and assembles the AssessmentReport. It holds no per-request state; one
// Engine is safe to share across goroutines.
type Engine struct {
	scorers []Scorer
}

// NewEngine builds an engine with the default scorer set, registered in
// ConditionOrder.
func NewEngine() *Engine {
	return &Engine{
		scorers: []Scorer{
			newDiabetesScorer(),
			newHypertensionScorer(),
			newCardiovascularScorer(),
			newDepressionScorer(),
			newCancerScorer(),
		},
	}
}

// Conditions returns the identifiers of the registered scorers in report order.
func (e *Engine) Conditions() []string {
	out := make([]string, len(e.scorers))
	for i, s := range e.scorers {
		out[i] = s.Condition()
	}
	return out
}

// CalculateAllRisks scores every condition sequentially. The first scorer
// failure aborts the assessment: a partial clinical report is worse than
// none.
func (e *Engine) CalculateAllRisks(rec PatientRecord) (*AssessmentReport, error) {
	report := &AssessmentReport{Results: make([]RiskResult, 0, len(e.scorers))}
	for _, s := range e.scorers {
		result, err := s.Score(rec)
		if err != nil {
			return nil, fmt.Errorf("risk assessment aborted: %w", err)
		}
		report.Results = append(report.Results, result)
	}
	return report, nil
}

// CalculateAllRisksParallel scores every condition concurrently. Scorers
// share only the immutable record, so the result is identical to the
// sequential path; collection order is re-imposed after the fan-in.
func (e *Engine) CalculateAllRisksParallel(rec PatientRecord) (*AssessmentReport, error) {
	results := make([]RiskResult, len(e.scorers))
	errs := make([]error, len(e.scorers))

	var wg sync.WaitGroup
	for i, s := range e.scorers {
		wg.Add(1)
		go func(i int, s Scorer) {
			defer wg.Done()
			results[i], errs[i] = s.Score(rec)
		}(i, s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("risk assessment aborted: %w", err)
		}
	}
	return &AssessmentReport{Results: results}, nil
}

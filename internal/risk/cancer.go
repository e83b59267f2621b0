package risk

// Cancer predisposition scorer. Family cancer history is the only scorer
// that reads the FamilyCancer field; the other conditions must never be
// influenced by it.
func newCancerScorer() Scorer {
	return weightedModel{
		condition: ConditionCancerPredisposition,
		topN:      3,
		base: func(rec PatientRecord) float64 {
			return 4
		},
		rules: []rule{
			graded("Age", func(rec PatientRecord) float64 {
				return ageBand(rec.Age, 40, 5, 20)
			}),
			graded("Family History of Cancer", func(rec PatientRecord) float64 {
				switch rec.FamilyCancer {
				case CancerNone:
					return 0
				case CancerOther:
					return 12
				}
				return 18
			}),
			graded("Smoking", func(rec PatientRecord) float64 {
				switch rec.Smoking {
				case SmokingCurrent:
					return 16
				case SmokingFormer:
					return 8
				}
				return 0
			}),
			graded("Alcohol Consumption", func(rec PatientRecord) float64 {
				switch rec.Alcohol {
				case AlcoholHeavy:
					return 10
				case AlcoholModerate:
					return 4
				}
				return 0
			}),
			when("BMI", 6, func(rec PatientRecord) bool {
				return rec.BMI >= 30
			}),
			when("Diet Pattern", 3, func(rec PatientRecord) bool {
				return rec.Diet == DietStandard
			}),
		},
	}
}

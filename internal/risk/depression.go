package risk

// Depression relapse scorer. Prior history dominates the model; the base
// reflects the known prevalence skew toward women.
func newDepressionScorer() Scorer {
	return weightedModel{
		condition: ConditionDepressionRelapse,
		topN:      3,
		base: func(rec PatientRecord) float64 {
			switch rec.Gender {
			case GenderFemale:
				return 7
			case GenderMale:
				return 4
			}
			return 6
		},
		rules: []rule{
			when("History of Depression", 35, func(rec PatientRecord) bool {
				return rec.DepressionHistory
			}),
			graded("Physical Inactivity", func(rec PatientRecord) float64 {
				switch rec.Exercise {
				case ExerciseSedentary:
					return 10
				case ExerciseLight:
					return 4
				}
				return 0
			}),
			graded("Alcohol Consumption", func(rec PatientRecord) float64 {
				switch rec.Alcohol {
				case AlcoholHeavy:
					return 12
				case AlcoholModerate:
					return 4
				}
				return 0
			}),
			when("Smoking", 5, func(rec PatientRecord) bool {
				return rec.Smoking == SmokingCurrent
			}),
			when("Age", 4, func(rec PatientRecord) bool {
				return rec.Age < 30
			}),
			when("Diet Pattern", 3, func(rec PatientRecord) bool {
				return rec.Diet == DietStandard || rec.Diet == DietOther
			}),
		},
	}
}

package risk

// Hypertension scorer. Blood pressure categories follow the ACC/AHA
// guideline bands (elevated 120-129, stage 1 130-139/80-89, stage 2 140/90).
func newHypertensionScorer() Scorer {
	return weightedModel{
		condition: ConditionHypertension,
		topN:      3,
		base: func(rec PatientRecord) float64 {
			switch rec.Gender {
			case GenderMale:
				return 6
			case GenderFemale:
				return 4
			}
			return 5
		},
		rules: []rule{
			graded("Age", func(rec PatientRecord) float64 {
				return ageBand(rec.Age, 30, 4, 20)
			}),
			graded("Blood Pressure", func(rec PatientRecord) float64 {
				switch {
				case rec.SystolicBP >= 140 || rec.DiastolicBP >= 90:
					return 25
				case rec.SystolicBP >= 130 || rec.DiastolicBP >= 80:
					return 12
				case rec.SystolicBP >= 120:
					return 5
				}
				return 0
			}),
			when("Family History of Hypertension", 12, func(rec PatientRecord) bool {
				return rec.FamilyHypertension
			}),
			graded("BMI", func(rec PatientRecord) float64 {
				switch {
				case rec.BMI >= 30:
					return 12
				case rec.BMI >= 25:
					return 6
				}
				return 0
			}),
			graded("Alcohol Consumption", func(rec PatientRecord) float64 {
				switch rec.Alcohol {
				case AlcoholHeavy:
					return 10
				case AlcoholModerate:
					return 5
				}
				return 0
			}),
			graded("Physical Inactivity", func(rec PatientRecord) float64 {
				switch rec.Exercise {
				case ExerciseSedentary:
					return 6
				case ExerciseLight:
					return 3
				}
				return 0
			}),
			graded("Smoking", func(rec PatientRecord) float64 {
				switch rec.Smoking {
				case SmokingCurrent:
					return 6
				case SmokingFormer:
					return 2
				}
				return 0
			}),
			when("Diet Pattern", 3, func(rec PatientRecord) bool {
				return rec.Diet == DietStandard
			}),
			when("Resting Heart Rate", 3, func(rec PatientRecord) bool {
				return rec.HeartRate > 90
			}),
		},
	}
}

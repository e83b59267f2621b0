package risk

// Type 2 diabetes scorer. Glycemic thresholds follow the ADA diagnostic
// criteria (fasting glucose 100/126 mg/dL, HbA1c 5.7/6.5%); BMI bands follow
// the WHO classification.
func newDiabetesScorer() Scorer {
	return weightedModel{
		condition: ConditionType2Diabetes,
		topN:      3,
		base: func(rec PatientRecord) float64 {
			if rec.Gender == GenderMale {
				return 5
			}
			return 4
		},
		rules: []rule{
			graded("Age", func(rec PatientRecord) float64 {
				return ageBand(rec.Age, 30, 3, 15)
			}),
			graded("BMI", func(rec PatientRecord) float64 {
				switch {
				case rec.BMI >= 35:
					return 20
				case rec.BMI >= 30:
					return 14
				case rec.BMI >= 25:
					return 8
				}
				return 0
			}),
			graded("Fasting Glucose", func(rec PatientRecord) float64 {
				switch {
				case rec.FastingGlucose >= 126:
					return 20
				case rec.FastingGlucose >= 100:
					return 8
				}
				return 0
			}),
			graded("HbA1c", func(rec PatientRecord) float64 {
				switch {
				case rec.HbA1c >= 6.5:
					return 18
				case rec.HbA1c >= 5.7:
					return 6
				}
				return 0
			}),
			when("Family History of Diabetes", 12, func(rec PatientRecord) bool {
				return rec.FamilyDiabetes
			}),
			when("Gestational Diabetes History", 10, func(rec PatientRecord) bool {
				return rec.GestationalDiabetes
			}),
			when("Blood Pressure", 4, func(rec PatientRecord) bool {
				return rec.SystolicBP >= 140 || rec.DiastolicBP >= 90
			}),
			when("Low HDL Cholesterol", 4, func(rec PatientRecord) bool {
				return rec.HDLCholesterol < 40
			}),
			graded("Smoking", func(rec PatientRecord) float64 {
				switch rec.Smoking {
				case SmokingCurrent:
					return 4
				case SmokingFormer:
					return 2
				}
				return 0
			}),
			graded("Physical Inactivity", func(rec PatientRecord) float64 {
				switch rec.Exercise {
				case ExerciseSedentary:
					return 5
				case ExerciseLight:
					return 2
				}
				return 0
			}),
			when("Diet Pattern", 3, func(rec PatientRecord) bool {
				return rec.Diet == DietStandard
			}),
		},
	}
}

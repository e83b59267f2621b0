package risk

// Cardiovascular disease scorer. Lipid bands follow NCEP ATP III (LDL
// 130/160/190 mg/dL, protective HDL < 40 mg/dL, total/HDL ratio above 5).
func newCardiovascularScorer() Scorer {
	return weightedModel{
		condition: ConditionCardiovascular,
		topN:      3,
		base: func(rec PatientRecord) float64 {
			switch rec.Gender {
			case GenderMale:
				return 6
			case GenderFemale:
				return 3
			}
			return 4
		},
		rules: []rule{
			graded("Age", func(rec PatientRecord) float64 {
				return ageBand(rec.Age, 40, 5, 20)
			}),
			graded("Smoking", func(rec PatientRecord) float64 {
				switch rec.Smoking {
				case SmokingCurrent:
					return 16
				case SmokingFormer:
					return 6
				}
				return 0
			}),
			graded("LDL Cholesterol", func(rec PatientRecord) float64 {
				switch {
				case rec.LDLCholesterol >= 190:
					return 16
				case rec.LDLCholesterol >= 160:
					return 12
				case rec.LDLCholesterol >= 130:
					return 6
				}
				return 0
			}),
			when("Low HDL Cholesterol", 8, func(rec PatientRecord) bool {
				return rec.HDLCholesterol < 40
			}),
			when("Total/HDL Cholesterol Ratio", 6, func(rec PatientRecord) bool {
				return rec.HDLCholesterol > 0 && rec.TotalCholesterol/rec.HDLCholesterol > 5
			}),
			graded("Blood Pressure", func(rec PatientRecord) float64 {
				switch {
				case rec.SystolicBP >= 140 || rec.DiastolicBP >= 90:
					return 10
				case rec.SystolicBP >= 130 || rec.DiastolicBP >= 80:
					return 5
				}
				return 0
			}),
			when("Elevated Fasting Glucose", 8, func(rec PatientRecord) bool {
				return rec.FastingGlucose >= 126
			}),
			when("BMI", 6, func(rec PatientRecord) bool {
				return rec.BMI >= 30
			}),
			graded("Physical Inactivity", func(rec PatientRecord) float64 {
				switch rec.Exercise {
				case ExerciseSedentary:
					return 6
				case ExerciseLight:
					return 2
				}
				return 0
			}),
			when("Family History of Hypertension", 4, func(rec PatientRecord) bool {
				return rec.FamilyHypertension
			}),
			when("Diet Pattern", 3, func(rec PatientRecord) bool {
				return rec.Diet == DietStandard
			}),
		},
	}
}

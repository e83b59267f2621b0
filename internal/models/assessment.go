package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"riskwise/internal/risk"
)

// Assessment is one stored risk assessment: the raw inputs, the per-condition
// results and the generated narrative. The scoring engine itself never sees
// this type; persistence happens strictly in the controller layer.
type Assessment struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`

	// Inputs as assessed
	Age                 int     `json:"age" example:"45"`
	Gender              string  `gorm:"type:varchar(10)" json:"gender" example:"Female"`
	Height              float64 `json:"height" example:"165"`
	Weight              float64 `json:"weight" example:"70"`
	BMI                 float64 `json:"bmi" example:"25.7"`
	Smoking             string  `gorm:"type:varchar(10)" json:"smoking" example:"Never"`
	Alcohol             string  `gorm:"type:varchar(12)" json:"alcohol" example:"None"`
	Exercise            string  `gorm:"type:varchar(12)" json:"exercise" example:"Moderate"`
	Diet                string  `gorm:"type:varchar(15)" json:"diet" example:"Mediterranean"`
	GestationalDiabetes bool    `json:"gestational_diabetes" example:"false"`
	DepressionHistory   bool    `json:"depression_history" example:"false"`
	FamilyDiabetes      bool    `json:"family_diabetes" example:"false"`
	FamilyHypertension  bool    `json:"family_hypertension" example:"false"`
	FamilyCancer        string  `gorm:"type:varchar(12)" json:"family_cancer" example:"None"`
	SystolicBP          int     `json:"systolic_bp" example:"128"`
	DiastolicBP         int     `json:"diastolic_bp" example:"82"`
	HeartRate           int     `json:"heart_rate" example:"72"`
	FastingGlucose      float64 `json:"fasting_glucose" example:"97"`
	HbA1c               float64 `json:"hba1c" example:"5.7"`
	TotalCholesterol    float64 `json:"total_cholesterol" example:"201"`
	LDLCholesterol      float64 `json:"ldl_cholesterol" example:"120"`
	HDLCholesterol      float64 `json:"hdl_cholesterol" example:"54"`

	// Per-condition results; key factors are stored as JSON arrays
	DiabetesRisk          float64 `json:"diabetes_risk" example:"24"`
	DiabetesFactors       string  `gorm:"type:text" json:"diabetes_factors"`
	HypertensionRisk      float64 `json:"hypertension_risk" example:"21"`
	HypertensionFactors   string  `gorm:"type:text" json:"hypertension_factors"`
	CardiovascularRisk    float64 `json:"cardiovascular_risk" example:"13"`
	CardiovascularFactors string  `gorm:"type:text" json:"cardiovascular_factors"`
	DepressionRisk        float64 `json:"depression_risk" example:"7"`
	DepressionFactors     string  `gorm:"type:text" json:"depression_factors"`
	CancerRisk            float64 `json:"cancer_risk" example:"9"`
	CancerFactors         string  `gorm:"type:text" json:"cancer_factors"`

	Narrative string `gorm:"type:text" json:"narrative" example:"Overall the profile shows a low-moderate diabetes risk."`
}

func (a *Assessment) TableName() string {
	return "assessments"
}

// SetReport copies an engine report into the per-condition columns.
func (a *Assessment) SetReport(report *risk.AssessmentReport) {
	for _, res := range report.Results {
		factors, _ := json.Marshal(res.KeyFactors)
		switch res.Condition {
		case risk.ConditionType2Diabetes:
			a.DiabetesRisk = res.RiskPercentage
			a.DiabetesFactors = string(factors)
		case risk.ConditionHypertension:
			a.HypertensionRisk = res.RiskPercentage
			a.HypertensionFactors = string(factors)
		case risk.ConditionCardiovascular:
			a.CardiovascularRisk = res.RiskPercentage
			a.CardiovascularFactors = string(factors)
		case risk.ConditionDepressionRelapse:
			a.DepressionRisk = res.RiskPercentage
			a.DepressionFactors = string(factors)
		case risk.ConditionCancerPredisposition:
			a.CancerRisk = res.RiskPercentage
			a.CancerFactors = string(factors)
		}
	}
}

// Report rebuilds the engine report from the stored columns, in the fixed
// condition order.
func (a *Assessment) Report() *risk.AssessmentReport {
	stored := map[string]struct {
		score   float64
		factors string
	}{
		risk.ConditionType2Diabetes:        {a.DiabetesRisk, a.DiabetesFactors},
		risk.ConditionHypertension:         {a.HypertensionRisk, a.HypertensionFactors},
		risk.ConditionCardiovascular:       {a.CardiovascularRisk, a.CardiovascularFactors},
		risk.ConditionDepressionRelapse:    {a.DepressionRisk, a.DepressionFactors},
		risk.ConditionCancerPredisposition: {a.CancerRisk, a.CancerFactors},
	}

	report := &risk.AssessmentReport{}
	for _, condition := range risk.ConditionOrder {
		entry := stored[condition]
		var factors []string
		if entry.factors != "" {
			_ = json.Unmarshal([]byte(entry.factors), &factors)
		}
		report.Results = append(report.Results, risk.RiskResult{
			Condition:      condition,
			RiskPercentage: entry.score,
			KeyFactors:     factors,
		})
	}
	return report
}

// AssessmentInput is the raw request payload. The binding tags mirror the
// bounds the companion form enforces; they are the documented contract with
// external collaborators.
type AssessmentInput struct {
	Age                 int     `json:"age" binding:"required,min=18,max=100"`
	Gender              string  `json:"gender" binding:"required,oneof=Female Male Other"`
	Height              float64 `json:"height" binding:"required,min=100,max=250"`
	Weight              float64 `json:"weight" binding:"required,min=30,max=200"`
	Smoking             string  `json:"smoking" binding:"required,oneof=Never Former Current"`
	Alcohol             string  `json:"alcohol" binding:"required,oneof=None Occasional Moderate Heavy"`
	Exercise            string  `json:"exercise" binding:"required,oneof=Sedentary Light Moderate Active 'Very Active'"`
	Diet                string  `json:"diet" binding:"required,oneof=Standard Mediterranean Plant-based Low-carb Other"`
	GestationalDiabetes bool    `json:"gestational_diabetes"`
	DepressionHistory   bool    `json:"depression_history"`
	FamilyDiabetes      bool    `json:"family_diabetes"`
	FamilyHypertension  bool    `json:"family_hypertension"`
	FamilyCancer        string  `json:"family_cancer" binding:"required,oneof=None Breast Prostate Lung Colorectal Other"`
	SystolicBP          int     `json:"systolic_bp" binding:"required,min=70,max=200"`
	DiastolicBP         int     `json:"diastolic_bp" binding:"required,min=40,max=120"`
	HeartRate           int     `json:"heart_rate" binding:"required,min=40,max=150"`
	FastingGlucose      float64 `json:"fasting_glucose" binding:"required,min=50,max=300"`
	HbA1c               float64 `json:"hba1c" binding:"required,min=3,max=15"`
	TotalCholesterol    float64 `json:"total_cholesterol" binding:"required,min=100,max=400"`
	LDLCholesterol      float64 `json:"ldl_cholesterol" binding:"required,min=50,max=300"`
	HDLCholesterol      float64 `json:"hdl_cholesterol" binding:"required,min=20,max=100"`
}

// ToPatientInput converts the payload into the engine's input type.
func (in AssessmentInput) ToPatientInput() risk.PatientInput {
	return risk.PatientInput{
		Age:                 in.Age,
		Gender:              risk.Gender(in.Gender),
		Height:              in.Height,
		Weight:              in.Weight,
		Smoking:             risk.SmokingStatus(in.Smoking),
		Alcohol:             risk.AlcoholLevel(in.Alcohol),
		Exercise:            risk.ExerciseLevel(in.Exercise),
		Diet:                risk.DietPattern(in.Diet),
		GestationalDiabetes: in.GestationalDiabetes,
		DepressionHistory:   in.DepressionHistory,
		FamilyDiabetes:      in.FamilyDiabetes,
		FamilyHypertension:  in.FamilyHypertension,
		FamilyCancer:        risk.FamilyCancerType(in.FamilyCancer),
		SystolicBP:          in.SystolicBP,
		DiastolicBP:         in.DiastolicBP,
		HeartRate:           in.HeartRate,
		FastingGlucose:      in.FastingGlucose,
		HbA1c:               in.HbA1c,
		TotalCholesterol:    in.TotalCholesterol,
		LDLCholesterol:      in.LDLCholesterol,
		HDLCholesterol:      in.HDLCholesterol,
	}
}

// NewAssessment builds the persistence row from the validated input and the
// normalized record that was actually scored.
func NewAssessment(userID uint, in AssessmentInput, rec risk.PatientRecord) *Assessment {
	return &Assessment{
		UserID:              userID,
		Age:                 in.Age,
		Gender:              in.Gender,
		Height:              in.Height,
		Weight:              in.Weight,
		BMI:                 rec.BMI,
		Smoking:             in.Smoking,
		Alcohol:             in.Alcohol,
		Exercise:            in.Exercise,
		Diet:                in.Diet,
		GestationalDiabetes: in.GestationalDiabetes,
		DepressionHistory:   in.DepressionHistory,
		FamilyDiabetes:      in.FamilyDiabetes,
		FamilyHypertension:  in.FamilyHypertension,
		FamilyCancer:        in.FamilyCancer,
		SystolicBP:          in.SystolicBP,
		DiastolicBP:         in.DiastolicBP,
		HeartRate:           in.HeartRate,
		FastingGlucose:      in.FastingGlucose,
		HbA1c:               in.HbA1c,
		TotalCholesterol:    in.TotalCholesterol,
		LDLCholesterol:      in.LDLCholesterol,
		HDLCholesterol:      in.HDLCholesterol,
	}
}

// WhatIfInput overrides a subset of a stored assessment's fields for a
// hypothetical re-score. Absent fields keep their stored values.
type WhatIfInput struct {
	AssessmentID   uint     `json:"assessment_id" binding:"required"`
	Weight         *float64 `json:"weight,omitempty" binding:"omitempty,min=30,max=200"`
	Smoking        *string  `json:"smoking,omitempty" binding:"omitempty,oneof=Never Former Current"`
	Alcohol        *string  `json:"alcohol,omitempty" binding:"omitempty,oneof=None Occasional Moderate Heavy"`
	Exercise       *string  `json:"exercise,omitempty" binding:"omitempty,oneof=Sedentary Light Moderate Active 'Very Active'"`
	Diet           *string  `json:"diet,omitempty" binding:"omitempty,oneof=Standard Mediterranean Plant-based Low-carb Other"`
	SystolicBP     *int     `json:"systolic_bp,omitempty" binding:"omitempty,min=70,max=200"`
	DiastolicBP    *int     `json:"diastolic_bp,omitempty" binding:"omitempty,min=40,max=120"`
	FastingGlucose *float64 `json:"fasting_glucose,omitempty" binding:"omitempty,min=50,max=300"`
	HbA1c          *float64 `json:"hba1c,omitempty" binding:"omitempty,min=3,max=15"`
	LDLCholesterol *float64 `json:"ldl_cholesterol,omitempty" binding:"omitempty,min=50,max=300"`
	HDLCholesterol *float64 `json:"hdl_cholesterol,omitempty" binding:"omitempty,min=20,max=100"`
}

package risk

// Enumerated patient attributes. The string values are the documented
// contract boundary with external collaborators (form UI, mobile app);
// they must match these sets exactly.

type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "Never"
	SmokingFormer  SmokingStatus = "Former"
	SmokingCurrent SmokingStatus = "Current"
)

type AlcoholLevel string

const (
	AlcoholNone       AlcoholLevel = "None"
	AlcoholOccasional AlcoholLevel = "Occasional"
	AlcoholModerate   AlcoholLevel = "Moderate"
	AlcoholHeavy      AlcoholLevel = "Heavy"
)

type ExerciseLevel string

const (
	ExerciseSedentary  ExerciseLevel = "Sedentary"
	ExerciseLight      ExerciseLevel = "Light"
	ExerciseModerate   ExerciseLevel = "Moderate"
	ExerciseActive     ExerciseLevel = "Active"
	ExerciseVeryActive ExerciseLevel = "Very Active"
)

type DietPattern string

const (
	DietStandard      DietPattern = "Standard"
	DietMediterranean DietPattern = "Mediterranean"
	DietPlantBased    DietPattern = "Plant-based"
	DietLowCarb       DietPattern = "Low-carb"
	DietOther         DietPattern = "Other"
)

type FamilyCancerType string

const (
	CancerNone       FamilyCancerType = "None"
	CancerBreast     FamilyCancerType = "Breast"
	CancerProstate   FamilyCancerType = "Prostate"
	CancerLung       FamilyCancerType = "Lung"
	CancerColorectal FamilyCancerType = "Colorectal"
	CancerOther      FamilyCancerType = "Other"
)

// PatientRecord is the normalized, read-only snapshot of one assessment
// request. Construct it with NewPatientRecord; scorers reject records that
// did not go through the constructor. BMI is always derived, never supplied.
type PatientRecord struct {
	Age    int
	Gender Gender
	Height float64 // cm
	Weight float64 // kg
	BMI    float64 // derived: kg / (cm/100)^2

	Smoking  SmokingStatus
	Alcohol  AlcoholLevel
	Exercise ExerciseLevel
	Diet     DietPattern

	GestationalDiabetes bool
	DepressionHistory   bool
	FamilyDiabetes      bool
	FamilyHypertension  bool
	FamilyCancer        FamilyCancerType

	SystolicBP  int // mmHg
	DiastolicBP int // mmHg
	HeartRate   int // bpm

	FastingGlucose   float64 // mg/dL
	HbA1c            float64 // %
	TotalCholesterol float64 // mg/dL
	LDLCholesterol   float64 // mg/dL
	HDLCholesterol   float64 // mg/dL

	normalized bool
}

// PatientInput carries the raw field values as supplied by the external
// collaborator. Numeric bounds are that collaborator's responsibility; the
// normalizer only guards the degenerate cases it cannot compute through.
type PatientInput struct {
	Age                 int
	Gender              Gender
	Height              float64
	Weight              float64
	Smoking             SmokingStatus
	Alcohol             AlcoholLevel
	Exercise            ExerciseLevel
	Diet                DietPattern
	GestationalDiabetes bool
	DepressionHistory   bool
	FamilyDiabetes      bool
	FamilyHypertension  bool
	FamilyCancer        FamilyCancerType
	SystolicBP          int
	DiastolicBP         int
	HeartRate           int
	FastingGlucose      float64
	HbA1c               float64
	TotalCholesterol    float64
	LDLCholesterol      float64
	HDLCholesterol      float64
}

// NewPatientRecord validates the raw input and derives BMI. It fails with a
// ValidationError when height or weight is zero or negative; everything else
// passes through unchanged.
func NewPatientRecord(in PatientInput) (PatientRecord, error) {
	if in.Height <= 0 {
		return PatientRecord{}, &ValidationError{Field: "height", Reason: "must be positive"}
	}
	if in.Weight <= 0 {
		return PatientRecord{}, &ValidationError{Field: "weight", Reason: "must be positive"}
	}

	meters := in.Height / 100
	return PatientRecord{
		Age:                 in.Age,
		Gender:              in.Gender,
		Height:              in.Height,
		Weight:              in.Weight,
		BMI:                 in.Weight / (meters * meters),
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
		normalized:          true,
	}, nil
}

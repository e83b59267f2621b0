package risk

import "fmt"

// ValidationError is returned when the raw input cannot produce a usable
// PatientRecord (e.g. non-positive height or weight). It is unrecoverable:
// the caller must fix the input, the engine never substitutes defaults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid patient input: %s %s", e.Field, e.Reason)
}

// ScoringError indicates a contract violation between the normalizer and a
// scorer, such as scoring a record that never went through NewPatientRecord.
// It should not occur at runtime with well-behaved callers.
type ScoringError struct {
	Condition string
	Reason    string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("scoring %s failed: %s", e.Condition, e.Reason)
}

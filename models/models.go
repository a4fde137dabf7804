package models

import (
	"fmt"
	"strings"
)

// Attribute names used by the healthy-range tables and the report output.
const (
	AttrGlucose       = "Glucose"
	AttrBloodPressure = "Blood Pressure"
	AttrInsulin       = "Insulin"
	AttrBMI           = "BMI"
	AttrAge           = "Age"
)

// AttributeOrder is the fixed declaration order of the five clinical
// attributes. Out-of-range findings are always reported in this order.
var AttributeOrder = []string{
	AttrGlucose,
	AttrBloodPressure,
	AttrInsulin,
	AttrBMI,
	AttrAge,
}

// PatientReading holds one complete set of patient inputs.
type PatientReading struct {
	Glucose       int     `json:"glucose"`        // mg/dL
	BloodPressure int     `json:"blood_pressure"` // mm Hg
	Insulin       int     `json:"insulin"`        // mu U/ml
	BMI           float64 `json:"bmi"`            // kg/m²
	Age           int     `json:"age"`            // years
	Location      string  `json:"location"`       // City, Country
}

// Features returns the reading as the 1x5 feature vector the classifier
// expects, in the order Glucose, Blood Pressure, Insulin, BMI, Age.
func (r PatientReading) Features() [5]float64 {
	return [5]float64{
		float64(r.Glucose),
		float64(r.BloodPressure),
		float64(r.Insulin),
		r.BMI,
		float64(r.Age),
	}
}

// Value returns the reading's value for a named attribute.
func (r PatientReading) Value(attribute string) float64 {
	switch attribute {
	case AttrGlucose:
		return float64(r.Glucose)
	case AttrBloodPressure:
		return float64(r.BloodPressure)
	case AttrInsulin:
		return float64(r.Insulin)
	case AttrBMI:
		return r.BMI
	case AttrAge:
		return float64(r.Age)
	}
	return 0
}

// Validate checks that the reading is complete and within the plausible input
// bounds. A reading that fails validation must never reach the evaluator.
func (r PatientReading) Validate() error {
	if r.Glucose < 0 || r.Glucose > 300 {
		return fmt.Errorf("glucose must be between 0 and 300 mg/dL, got %d", r.Glucose)
	}
	if r.BloodPressure < 0 || r.BloodPressure > 200 {
		return fmt.Errorf("blood pressure must be between 0 and 200 mm Hg, got %d", r.BloodPressure)
	}
	if r.Insulin < 0 || r.Insulin > 900 {
		return fmt.Errorf("insulin must be between 0 and 900 mu U/ml, got %d", r.Insulin)
	}
	if r.BMI < 0 || r.BMI > 70.0 {
		return fmt.Errorf("BMI must be between 0 and 70, got %.1f", r.BMI)
	}
	if r.Age < 1 || r.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120 years, got %d", r.Age)
	}
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("location must not be empty")
	}
	return nil
}

// ClassifierVerdict is the classifier's output for one reading. Probability is
// the probability of the positive (diabetes) class as a percent in [0,100];
// when the classifier cannot produce probabilities the caller substitutes a
// neutral 50.
type ClassifierVerdict struct {
	Positive    bool    `json:"positive"`
	Probability float64 `json:"probability"` // percent
}

// RangeFlag marks one attribute whose reading falls outside its healthy range.
type RangeFlag struct {
	Attribute      string  `json:"attribute"`
	Value          float64 `json:"value"`
	Low            float64 `json:"low"`
	High           float64 `json:"high"`
	Recommendation string  `json:"recommendation"`
}

// EvaluationResult is the derived report state for one evaluation. It is never
// persisted; each evaluation is a pure function of reading, verdict and the
// static reference tables.
type EvaluationResult struct {
	Positive    bool        `json:"positive"`
	Probability float64     `json:"probability"` // percent, clamped to [0,100]
	HealthScore int         `json:"health_score"`
	Flags       []RangeFlag `json:"out_of_range"`
}

// OutOfRange returns just the flagged attribute names, in declaration order.
func (e EvaluationResult) OutOfRange() []string {
	names := make([]string, 0, len(e.Flags))
	for _, f := range e.Flags {
		names = append(names, f.Attribute)
	}
	return names
}

// Recommendations returns the tip strings for the flagged attributes, in the
// same order as the flags.
func (e EvaluationResult) Recommendations() []string {
	tips := make([]string, 0, len(e.Flags))
	for _, f := range e.Flags {
		tips = append(tips, f.Recommendation)
	}
	return tips
}

package evaluate

import (
	"fmt"
	"math"

	"github.com/Awais2931/Diabetes-Model/models"
)

// Range is an inclusive healthy bound for one clinical attribute. Values equal
// to Low or High count as healthy.
type Range struct {
	Low  float64
	High float64
}

// Target returns the range midpoint, used as the healthy target on the
// comparison chart.
func (r Range) Target() float64 {
	return (r.Low + r.High) / 2
}

// Contains reports whether v falls inside the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Healthy reference ranges. Age is reference only, not a clinical bound.
var healthyRanges = map[string]Range{
	models.AttrGlucose:       {Low: 70, High: 140},
	models.AttrBloodPressure: {Low: 60, High: 120},
	models.AttrInsulin:       {Low: 16, High: 166},
	models.AttrBMI:           {Low: 18.5, High: 24.9},
	models.AttrAge:           {Low: 18, High: 50},
}

// Per-attribute tips shown when the attribute is out of range.
var recommendations = map[string]string{
	models.AttrGlucose:       "Consider reducing sugar intake and increasing physical activity.",
	models.AttrBloodPressure: "Try reducing salt intake and managing stress.",
	models.AttrInsulin:       "Consult with a doctor about insulin resistance and diet control.",
	models.AttrBMI:           "A balanced diet and regular exercise may help improve BMI.",
	models.AttrAge:           "Regular health checkups are recommended.",
}

// Evaluator turns a validated reading plus a classifier verdict into the
// report shown to the user. It holds only the static reference tables and is
// safe for concurrent use.
type Evaluator struct {
	ranges map[string]Range
	tips   map[string]string
}

// New builds an Evaluator over the static reference tables. Both tables must
// carry an entry for every attribute; a missing entry is a configuration
// error and the caller must treat it as fatal.
func New() (*Evaluator, error) {
	for _, attr := range models.AttributeOrder {
		if _, ok := healthyRanges[attr]; !ok {
			return nil, fmt.Errorf("healthy-range table is missing attribute %q", attr)
		}
		if _, ok := recommendations[attr]; !ok {
			return nil, fmt.Errorf("recommendation table is missing attribute %q", attr)
		}
	}
	return &Evaluator{ranges: healthyRanges, tips: recommendations}, nil
}

// Evaluate compares the reading against the healthy ranges and derives the
// health score from the verdict. It assumes the reading already passed
// validation, performs no I/O and is fully deterministic.
func (e *Evaluator) Evaluate(reading models.PatientReading, verdict models.ClassifierVerdict) models.EvaluationResult {
	percent := clampPercent(verdict.Probability)

	result := models.EvaluationResult{
		Positive:    verdict.Positive,
		Probability: percent,
		HealthScore: 100 - int(math.Round(percent)),
	}

	for _, attr := range models.AttributeOrder {
		rng := e.ranges[attr]
		value := reading.Value(attr)
		if rng.Contains(value) {
			continue
		}
		result.Flags = append(result.Flags, models.RangeFlag{
			Attribute:      attr,
			Value:          value,
			Low:            rng.Low,
			High:           rng.High,
			Recommendation: e.tips[attr],
		})
	}

	return result
}

// RangeFor returns the healthy range for a named attribute.
func (e *Evaluator) RangeFor(attribute string) (Range, bool) {
	r, ok := e.ranges[attribute]
	return r, ok
}

// Targets returns the healthy-target midpoint per attribute.
func (e *Evaluator) Targets() map[string]float64 {
	targets := make(map[string]float64, len(e.ranges))
	for attr, rng := range e.ranges {
		targets[attr] = rng.Target()
	}
	return targets
}

// Classifier probabilities can land just outside the scale due to floating
// point; the report must never show a negative or >100 score.
func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

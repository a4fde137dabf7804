package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Artifact is the serialized model loaded from disk. Weights follow the
// feature order Glucose, Blood Pressure, Insulin, BMI, Age.
type Artifact struct {
	Weights       [5]float64 `json:"weights"`
	Intercept     float64    `json:"intercept"`
	Threshold     float64    `json:"threshold"`
	Probabilities bool       `json:"probabilities"`
}

// Model is a logistic classifier over the five-feature reading vector.
type Model struct {
	art    Artifact
	logger zerolog.Logger
}

// probModel is a Model whose artifact supports probability output.
type probModel struct {
	*Model
}

// Load reads a model artifact from path and returns the classifier capability.
// The returned value implements models.ProbabilityClassifier only when the
// artifact carries probability support. A load failure is fatal to callers:
// the service must not start without a model.
func Load(path string) (models.Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %q: %w", path, err)
	}

	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parsing model artifact %q: %w", path, err)
	}
	if art.Threshold <= 0 || art.Threshold >= 1 {
		art.Threshold = 0.5
	}

	m := &Model{
		art:    art,
		logger: log.With().Str("component", "classifier").Logger(),
	}
	m.logger.Info().
		Str("path", path).
		Bool("probabilities", art.Probabilities).
		Msg("Model artifact loaded")

	if art.Probabilities {
		return &probModel{m}, nil
	}
	return m, nil
}

// Predict returns 1 when the positive-class probability reaches the artifact's
// decision threshold, 0 otherwise.
func (m *Model) Predict(features [5]float64) (int, error) {
	p := m.positiveProbability(features)
	if p >= m.art.Threshold {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [p_negative, p_positive].
func (m *probModel) PredictProba(features [5]float64) ([2]float64, error) {
	p := m.positiveProbability(features)
	return [2]float64{1 - p, p}, nil
}

func (m *Model) positiveProbability(features [5]float64) float64 {
	z := m.art.Intercept
	for i, w := range m.art.Weights {
		z += w * features[i]
	}
	return 1 / (1 + math.Exp(-z))
}

// neutralPercent is substituted when the classifier cannot produce
// probabilities. Kept on the percent scale used throughout.
const neutralPercent = 50.0

// Verdict runs the classifier on the feature vector and derives the verdict.
// When the classifier lacks the probability capability, or its probability
// call fails, the neutral 50% fallback is substituted silently.
func Verdict(c models.Classifier, features [5]float64) (models.ClassifierVerdict, error) {
	label, err := c.Predict(features)
	if err != nil {
		return models.ClassifierVerdict{}, fmt.Errorf("predict: %w", err)
	}

	percent := neutralPercent
	if pc, ok := c.(models.ProbabilityClassifier); ok {
		if probs, err := pc.PredictProba(features); err == nil {
			percent = probs[1] * 100
		}
	}

	return models.ClassifierVerdict{
		Positive:    label == 1,
		Probability: percent,
	}, nil
}

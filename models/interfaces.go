package models

// Classifier is the opaque prediction capability loaded from a model artifact
// at startup. Predict returns 1 for the positive (diabetes) class, 0 otherwise.
type Classifier interface {
	Predict(features [5]float64) (int, error)
}

// ProbabilityClassifier is the optional probability capability. PredictProba
// returns [p_negative, p_positive]. Callers must fall back to a neutral 50%
// when a Classifier does not implement it.
type ProbabilityClassifier interface {
	Classifier
	PredictProba(features [5]float64) ([2]float64, error)
}

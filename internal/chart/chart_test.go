package chart

import (
	"testing"

	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestComparison(t *testing.T) {
	ev, err := evaluate.New()
	require.NoError(t, err)

	reading := models.PatientReading{
		Glucose: 200, BloodPressure: 150, Insulin: 85, BMI: 22.0, Age: 35,
		Location: "Narowal, Pakistan",
	}
	result := ev.Evaluate(reading, models.ClassifierVerdict{Positive: true, Probability: 83})

	png, err := Comparison(reading, result, ev)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

package report

import (
	"bytes"
	"fmt"

	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/jung-kurt/gofpdf"
)

// Download metadata for the generated report.
const (
	Filename = "diabetes_report.pdf"
	MIMEType = "application/pdf"
)

// PDF renders the evaluation plus the raw reading into a fixed-layout,
// monospace report document and returns the serialized bytes.
func PDF(reading models.PatientReading, result models.EvaluationResult) ([]byte, error) {
	label := "No Diabetes"
	if result.Positive {
		label = "Diabetes"
	}

	body := fmt.Sprintf(`Diabetes Prediction Report
--------------------------
Prediction: %s
Risk Probability: %.1f%%
Health Score: %d/100

Patient Values:
- Glucose: %d
- Blood Pressure: %d
- Insulin: %d
- BMI: %.1f
- Age: %d
- Location: %s
`,
		label,
		result.Probability,
		result.HealthScore,
		reading.Glucose,
		reading.BloodPressure,
		reading.Insulin,
		reading.BMI,
		reading.Age,
		reading.Location,
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Diabetes Prediction Report", true)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 11)
	pdf.MultiCell(0, 6, body, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

package chart

import (
	"bytes"
	"fmt"

	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorOutOfRange = drawing.Color{R: 231, G: 76, B: 60, A: 255}  // #E74C3C
	colorHealthy    = drawing.Color{R: 39, G: 174, B: 96, A: 255}  // #27AE60
	colorTarget     = drawing.Color{R: 52, G: 152, B: 219, A: 255} // #3498DB
)

// Comparison renders the patient values next to the healthy-target midpoints
// as a grouped bar chart PNG. Out-of-range values are tinted red, in-range
// green, targets blue.
func Comparison(reading models.PatientReading, result models.EvaluationResult, ev *evaluate.Evaluator) ([]byte, error) {
	flagged := make(map[string]bool, len(result.Flags))
	for _, f := range result.Flags {
		flagged[f.Attribute] = true
	}

	bars := make([]chart.Value, 0, len(models.AttributeOrder)*2)
	for _, attr := range models.AttributeOrder {
		rng, ok := ev.RangeFor(attr)
		if !ok {
			return nil, fmt.Errorf("no healthy range for attribute %q", attr)
		}

		valueColor := colorHealthy
		if flagged[attr] {
			valueColor = colorOutOfRange
		}

		bars = append(bars,
			chart.Value{
				Label: attr,
				Value: reading.Value(attr),
				Style: chart.Style{FillColor: valueColor, StrokeColor: valueColor},
			},
			chart.Value{
				Label: attr + " target",
				Value: rng.Target(),
				Style: chart.Style{FillColor: colorTarget, StrokeColor: colorTarget},
			},
		)
	}

	graph := chart.BarChart{
		Title:      "Your Health vs. Healthy Targets",
		Width:      760,
		Height:     420,
		BarWidth:   48,
		BarSpacing: 14,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name: "Value",
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering comparison chart: %w", err)
	}
	return buf.Bytes(), nil
}

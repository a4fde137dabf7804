package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/Awais2931/Diabetes-Model/internal/chart"
	"github.com/Awais2931/Diabetes-Model/internal/classifier"
	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/internal/report"
	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const incompleteWarning = "Please enter all patient details (including location) before predicting."

var errIncomplete = errors.New("incomplete input")

// Handler serves the single-page prediction flow.
type Handler struct {
	classifier models.Classifier
	evaluator  *evaluate.Evaluator
	logger     zerolog.Logger
}

// NewHandler wires the classifier capability and the evaluator into the
// presentation layer.
func NewHandler(clf models.Classifier, ev *evaluate.Evaluator) *Handler {
	return &Handler{
		classifier: clf,
		evaluator:  ev,
		logger:     log.With().Str("component", "server").Logger(),
	}
}

// readingRequest is the submitted form or JSON body. Pointer fields detect
// unset inputs: a reading with any field missing is rejected before any
// computation happens.
type readingRequest struct {
	Glucose       *int     `form:"glucose" json:"glucose" binding:"required"`
	BloodPressure *int     `form:"blood_pressure" json:"blood_pressure" binding:"required"`
	Insulin       *int     `form:"insulin" json:"insulin" binding:"required"`
	BMI           *float64 `form:"bmi" json:"bmi" binding:"required"`
	Age           *int     `form:"age" json:"age" binding:"required"`
	Location      string   `form:"location" json:"location"`
}

func (r readingRequest) reading() models.PatientReading {
	return models.PatientReading{
		Glucose:       *r.Glucose,
		BloodPressure: *r.BloodPressure,
		Insulin:       *r.Insulin,
		BMI:           *r.BMI,
		Age:           *r.Age,
		Location:      strings.TrimSpace(r.Location),
	}
}

// resultView is the template payload for a completed evaluation.
type resultView struct {
	Reading     models.PatientReading
	Positive    bool
	Probability float64
	HealthScore int
	Flags       []models.RangeFlag
	Chart       template.URL
}

type pageData struct {
	Warning string
	Result  *resultView
}

// Index renders the empty input form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

// Predict evaluates a submitted form and renders the three result views on
// the same page.
func (h *Handler) Predict(c *gin.Context) {
	reading, err := bindReading(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{Warning: warningFor(err)})
		return
	}

	result, err := h.run(reading)
	if err != nil {
		h.logger.Error().Err(err).Msg("Evaluation failed")
		c.HTML(http.StatusInternalServerError, "index.html", pageData{Warning: "Prediction failed, please try again."})
		return
	}

	png, err := chart.Comparison(reading, result, h.evaluator)
	if err != nil {
		h.logger.Error().Err(err).Msg("Chart rendering failed")
		c.HTML(http.StatusInternalServerError, "index.html", pageData{Warning: "Prediction failed, please try again."})
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Result: &resultView{
			Reading:     reading,
			Positive:    result.Positive,
			Probability: result.Probability,
			HealthScore: result.HealthScore,
			Flags:       result.Flags,
			Chart:       template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
		},
	})
}

// Report re-evaluates the submitted reading and streams the PDF summary.
func (h *Handler) Report(c *gin.Context) {
	reading, err := bindReading(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{Warning: warningFor(err)})
		return
	}

	result, err := h.run(reading)
	if err != nil {
		h.logger.Error().Err(err).Msg("Evaluation failed")
		c.HTML(http.StatusInternalServerError, "index.html", pageData{Warning: "Report generation failed, please try again."})
		return
	}

	pdf, err := report.PDF(reading, result)
	if err != nil {
		h.logger.Error().Err(err).Msg("PDF generation failed")
		c.HTML(http.StatusInternalServerError, "index.html", pageData{Warning: "Report generation failed, please try again."})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.MIMEType, pdf)
}

// PredictJSON is the API mirror of Predict.
func (h *Handler) PredictJSON(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": incompleteWarning})
		return
	}

	reading := req.reading()
	if err := reading.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.run(reading)
	if err != nil {
		h.logger.Error().Err(err).Msg("Evaluation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// run is the single computational step: classifier verdict plus range
// evaluation. Stateless; nothing is retained across requests.
func (h *Handler) run(reading models.PatientReading) (models.EvaluationResult, error) {
	verdict, err := classifier.Verdict(h.classifier, reading.Features())
	if err != nil {
		return models.EvaluationResult{}, err
	}
	return h.evaluator.Evaluate(reading, verdict), nil
}

func bindReading(c *gin.Context) (models.PatientReading, error) {
	var req readingRequest
	if err := c.ShouldBind(&req); err != nil {
		return models.PatientReading{}, errIncomplete
	}
	reading := req.reading()
	if err := reading.Validate(); err != nil {
		if strings.TrimSpace(reading.Location) == "" {
			return reading, errIncomplete
		}
		return reading, err
	}
	return reading, nil
}

func warningFor(err error) string {
	if errors.Is(err, errIncomplete) {
		return incompleteWarning
	}
	return "Invalid input: " + err.Error()
}

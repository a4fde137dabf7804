package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/internal/report"
	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier is the test double for the loaded model artifact.
type stubClassifier struct {
	label int
}

func (s stubClassifier) Predict(_ [5]float64) (int, error) {
	return s.label, nil
}

// stubProbClassifier additionally exposes a fixed probability.
type stubProbClassifier struct {
	stubClassifier
	positive float64
}

func (s stubProbClassifier) PredictProba(_ [5]float64) ([2]float64, error) {
	return [2]float64{1 - s.positive, s.positive}, nil
}

func newTestRouter(t *testing.T, clf models.Classifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ev, err := evaluate.New()
	require.NoError(t, err)
	return NewRouter(clf, ev, 1000)
}

func validForm() url.Values {
	return url.Values{
		"glucose":        {"110"},
		"blood_pressure": {"80"},
		"insulin":        {"85"},
		"bmi":            {"22.0"},
		"age":            {"35"},
		"location":       {"Narowal, Pakistan"},
	}
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	router := newTestRouter(t, stubClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Predict Diabetes")
}

func TestPredictForm(t *testing.T) {
	router := newTestRouter(t, stubProbClassifier{stubClassifier{label: 0}, 0.12})

	w := postForm(router, "/predict", validForm())

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "unlikely to have diabetes")
	assert.Contains(t, body, "88/100")
	assert.Contains(t, body, "data:image/png;base64,")
	assert.Contains(t, body, "All entered values are within the healthy range.")
}

func TestPredictForm_Incomplete(t *testing.T) {
	router := newTestRouter(t, stubClassifier{})

	form := validForm()
	form.Del("glucose")
	w := postForm(router, "/predict", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), incompleteWarning)
}

func TestPredictForm_EmptyLocation(t *testing.T) {
	router := newTestRouter(t, stubClassifier{})

	form := validForm()
	form.Set("location", "")
	w := postForm(router, "/predict", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), incompleteWarning)
}

func TestPredictForm_OutOfBoundsValue(t *testing.T) {
	router := newTestRouter(t, stubClassifier{})

	form := validForm()
	form.Set("glucose", "999")
	w := postForm(router, "/predict", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}

func TestPredictJSON(t *testing.T) {
	router := newTestRouter(t, stubProbClassifier{stubClassifier{label: 1}, 0.83})

	payload := map[string]any{
		"glucose": 200, "blood_pressure": 150, "insulin": 85,
		"bmi": 22.0, "age": 35, "location": "Narowal, Pakistan",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.EvaluationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Positive)
	assert.Equal(t, 17, result.HealthScore)
	assert.Equal(t, []string{models.AttrGlucose, models.AttrBloodPressure}, result.OutOfRange())
}

func TestPredictJSON_MissingField(t *testing.T) {
	router := newTestRouter(t, stubClassifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict",
		strings.NewReader(`{"glucose": 110}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport(t *testing.T) {
	router := newTestRouter(t, stubProbClassifier{stubClassifier{label: 1}, 0.83})

	w := postForm(router, "/report", validForm())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.MIMEType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), report.Filename)
	assert.Equal(t, "%PDF-", w.Body.String()[:5])
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ev, err := evaluate.New()
	require.NoError(t, err)
	router := NewRouter(stubClassifier{}, ev, 1)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/Awais2931/Diabetes-Model/internal/config"
	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/models"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter builds the gin engine with middleware, templates and routes.
func NewRouter(clf models.Classifier, ev *evaluate.Evaluator, rateLimitRPS int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), RateLimit(rateLimitRPS))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h := NewHandler(clf, ev)
	r.GET("/", h.Index)
	r.POST("/predict", h.Predict)
	r.POST("/report", h.Report)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/predict", h.PredictJSON)
	}

	return r
}

// Server binds the router to the configured address.
type Server struct {
	http *http.Server
}

// New assembles the HTTP server from configuration and the shared, immutable
// classifier and evaluator capabilities.
func New(cfg *config.Config, clf models.Classifier, ev *evaluate.Evaluator) *Server {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	return &Server{
		http: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      NewRouter(clf, ev, cfg.RateLimitRPS),
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
	}
}

// ListenAndServe blocks serving requests until the listener fails or closes.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

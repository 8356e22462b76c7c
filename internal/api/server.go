package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/promptfoundry/promptfoundry/internal/catalog"
	"github.com/promptfoundry/promptfoundry/internal/engine"
	"github.com/promptfoundry/promptfoundry/internal/worker"
)

// defaultMaxBody is the request body limit used when Options leaves it unset (1 MB).
const defaultMaxBody int64 = 1 << 20

// maxReviewBatch caps the number of prompts of one batch review.
const maxReviewBatch = 100

// Options configures a Server. Zero values select defaults.
type Options struct {
	CORSOrigin   string
	MaxBodyBytes int64
	Logger       *zap.Logger
	Exporter     engine.Exporter
	Runner       engine.Runner
	Reviewer     *worker.Reviewer
}

// Server holds the HTTP handlers and dependencies.
type Server struct {
	pipeline *engine.Pipeline
	catalog  *catalog.Catalog
	exporter engine.Exporter
	runner   engine.Runner
	reviewer *worker.Reviewer
	logger   *zap.Logger
	metrics  *metrics

	corsOrigin string
	maxBody    int64
	mux        *http.ServeMux
}

// New creates a new API server.
func New(p *engine.Pipeline, c *catalog.Catalog, opts Options) *Server {
	srv := &Server{
		pipeline:   p,
		catalog:    c,
		exporter:   opts.Exporter,
		runner:     opts.Runner,
		reviewer:   opts.Reviewer,
		logger:     opts.Logger,
		metrics:    newMetrics(),
		corsOrigin: opts.CORSOrigin,
		maxBody:    opts.MaxBodyBytes,
		mux:        http.NewServeMux(),
	}
	if srv.exporter == nil {
		srv.exporter = &engine.StubExporter{}
	}
	if srv.runner == nil {
		srv.runner = &engine.StubRunner{}
	}
	if srv.logger == nil {
		srv.logger = zap.NewNop()
	}
	if srv.reviewer == nil {
		srv.reviewer = worker.New(worker.DefaultParallelism, srv.logger)
	}
	if srv.corsOrigin == "" {
		srv.corsOrigin = "*"
	}
	if srv.maxBody <= 0 {
		srv.maxBody = defaultMaxBody
	}
	srv.routes()
	return srv
}

// Handler returns the root http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.recoverer(s.observe(s.cors(s.limitBody(jsonContent(s.mux)))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/intake", s.handleIntake)
	s.mux.HandleFunc("POST /api/critique", s.handleCritique)
	s.mux.HandleFunc("POST /api/rewrite", s.handleRewrite)
	s.mux.HandleFunc("POST /api/score", s.handleScore)
	s.mux.HandleFunc("POST /api/review", s.handleReview)
	s.mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	s.mux.HandleFunc("POST /api/templates", s.handleCreateTemplate)
	s.mux.HandleFunc("GET /api/use-cases", s.handleListUseCases)
	s.mux.HandleFunc("GET /api/library", s.handleListLibrary)
	s.mux.HandleFunc("GET /api/library/{id}", s.handleGetLibraryPrompt)
	s.mux.HandleFunc("POST /api/export", s.handleExport)
	s.mux.HandleFunc("POST /api/run", s.handleRun)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.handler())
}

// ---------------------------------------------------------------------------
// Response helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": detail}; detail is a message or a structured value.
func writeError(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"error": detail})
}

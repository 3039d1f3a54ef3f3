package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/storage"
)

const maxCurvePoints = 1000

type ProfileStore interface {
	SaveProfile(ctx context.Context, ownerID, name string, in engine.Inputs) (*storage.Profile, error)
	GetProfile(ctx context.Context, ownerID, name string) (*storage.Profile, error)
	ListProfiles(ctx context.Context, ownerID string) ([]storage.Profile, error)
	DeleteProfile(ctx context.Context, ownerID, name string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ ProfileStore = (*storage.Storage)(nil)
	_ Pinger       = (*storage.Storage)(nil)
)

// Options configures the API. A nil SensitivityPercent falls back to
// engine.DefaultSensitivityPercent; an empty Token disables authentication.
type Options struct {
	Defaults           engine.Inputs
	SensitivityPercent *float64
	CurvePoints        int
	RequestTimeout     time.Duration
	Token              string
}

type Server struct {
	profiles           ProfileStore
	health             []Pinger
	opts               Options
	sensitivityPercent float64
	logger             *zap.Logger
}

// NewServer builds the JSON API. profiles may be nil, in which case the
// profile routes are not mounted. Pingers are checked by /api/health.
func NewServer(profiles ProfileStore, opts Options, logger *zap.Logger, health ...Pinger) *Server {
	percent := engine.DefaultSensitivityPercent
	if opts.SensitivityPercent != nil {
		percent = *opts.SensitivityPercent
	}
	if opts.CurvePoints < 2 {
		opts.CurvePoints = engine.DefaultCurvePoints
	}
	return &Server{
		profiles:           profiles,
		health:             health,
		opts:               opts,
		sensitivityPercent: percent,
		logger:             logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	if s.opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.opts.RequestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Group(func(r chi.Router) {
			if s.opts.Token != "" {
				r.Use(s.requireToken)
			}

			r.Get("/defaults", s.handleDefaults)
			r.Get("/fields", s.handleFields)

			r.Post("/evaluate", s.handleEvaluate)
			r.Post("/sensitivity", s.handleSensitivity)
			r.Post("/scenario", s.handleScenario)
			r.Post("/curve", s.handleCurve)
			r.Post("/report", s.handleReport)

			if s.profiles != nil {
				r.Get("/profiles/{owner}", s.handleListProfiles)
				r.Get("/profiles/{owner}/{name}", s.handleGetProfile)
				r.Put("/profiles/{owner}/{name}", s.handleSaveProfile)
				r.Delete("/profiles/{owner}/{name}", s.handleDeleteProfile)
			}
		})
	})

	return r
}

// requireToken rejects requests without the configured bearer token.
func (s *Server) requireToken(next http.Handler) http.Handler {
	want := []byte("Bearer " + s.opts.Token)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			s.logger.Warn("Unauthorized API request",
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())))
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request with status and latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

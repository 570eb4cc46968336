package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Homestead_Go/internal/advisor"
	"github.com/osse101/Homestead_Go/internal/game"
	"github.com/osse101/Homestead_Go/internal/handler"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/metrics"
	"github.com/osse101/Homestead_Go/internal/naming"
	"github.com/osse101/Homestead_Go/internal/sse"
)

// ErrNotReady is reported by /readyz once shutdown has begun
var ErrNotReady = errors.New("server is shutting down")

// Options carries the listener and security settings
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	ready      atomic.Bool
}

// NewServer creates a new Server instance
func NewServer(opts Options, games game.Service, adv advisor.Advisor, resolver naming.Resolver, hub *sse.Hub) *Server {
	s := &Server{}
	s.ready.Store(true)

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	}
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(s))

	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(games, resolver)
	advisorHandler := handler.NewAdvisorHandler(adv, resolver)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crops", handler.HandleGetCrops())

		r.Route("/games", func(r chi.Router) {
			r.Post("/", gameHandler.HandleNewGame)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", gameHandler.HandleGetGame)
				r.Post("/plant", gameHandler.HandlePlant)
				r.Post("/water", gameHandler.HandleWater)
				r.Post("/advance-day", gameHandler.HandleAdvanceDay)
				r.Post("/harvest", gameHandler.HandleHarvest)
				r.Post("/remove", gameHandler.HandleRemove)
				r.Get("/events", sse.Handler(hub, games))
			})
		})

		r.Route("/advisor", func(r chi.Router) {
			r.Post("/ask", advisorHandler.HandleAsk)
			r.Post("/identify", advisorHandler.HandleIdentify)
			r.Post("/guide", advisorHandler.HandleGuide)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	s.router = r
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// CheckHealth implements handler.HealthChecker for /readyz
func (s *Server) CheckHealth(context.Context) error {
	if !s.ready.Load() {
		return ErrNotReady
	}
	return nil
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps event streams working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range quietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It blocks until the listener closes.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop marks the server not ready and shuts it down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.ready.Store(false)
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

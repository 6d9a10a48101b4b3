// Package server exposes the evaluation core over a JSON HTTP API: the
// parse endpoint used for live validation, the three batch generators, the
// contour-integral engine, and a WebSocket stream of integral partial sums.
// The server returns numbers only; rendering belongs to the caller.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Config holds the server configuration
type Config struct {
	Host            string
	Port            int
	EnableMetrics   bool
	EnableCORS      bool
	MaxResolution   int
	MaxSteps        int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            8080,
		EnableMetrics:   true,
		EnableCORS:      true,
		MaxResolution:   2000,
		MaxSteps:        1_000_000,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Server is the ComplexPlot HTTP server.
type Server struct {
	config   *Config
	metrics  *metrics
	server   *http.Server
	upgrader websocket.Upgrader
}

// metrics holds the Prometheus instruments for the evaluation endpoints.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	samplesDropped  prometheus.Counter
	invalidCells    prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "complexplot_requests_total",
			Help: "Total evaluation requests by operation and outcome",
		}, []string{"operation", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "complexplot_request_duration_seconds",
			Help: "Evaluation request duration in seconds",
		}, []string{"operation"}),
		samplesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "complexplot_contour_samples_dropped_total",
			Help: "Contour samples dropped as non-finite",
		}),
		invalidCells: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "complexplot_grid_invalid_cells_total",
			Help: "Grid cells marked invalid",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(m.requestsTotal)
		registerer.MustRegister(m.requestDuration)
		registerer.MustRegister(m.samplesDropped)
		registerer.MustRegister(m.invalidCells)
	}

	return m
}

// New creates a new ComplexPlot server
func New(config *Config) *Server {
	return NewWithRegistry(config, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a server with a custom metrics registry, used by
// tests to avoid duplicate registration.
func NewWithRegistry(config *Config, registerer prometheus.Registerer) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	return &Server{
		config:  config,
		metrics: newMetrics(registerer),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return config.EnableCORS
			},
		},
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	if s.config.EnableCORS {
		router.Use(s.corsMiddleware)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.loggingMiddleware)

	api.HandleFunc("/parse", s.parseExpression).Methods("POST")
	api.HandleFunc("/contours", s.evaluateContours).Methods("POST")
	api.HandleFunc("/contours/integral", s.evaluateIntegral).Methods("POST")
	api.HandleFunc("/grid/domain", s.evaluateDomainColoring).Methods("POST")
	api.HandleFunc("/grid/surface", s.evaluateSurface3D).Methods("POST")

	// registered outside the logging middleware: the response wrapper does
	// not implement http.Hijacker, which the WebSocket upgrade needs
	router.HandleFunc("/api/v1/contours/integral/stream", s.streamIntegral).Methods("GET")

	if s.config.EnableCORS {
		api.Methods("OPTIONS").HandlerFunc(s.handleOptions)
	}

	if s.config.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.HandleFunc("/health", s.healthCheck)

	return router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	log.Info().
		Str("addr", addr).
		Bool("metrics", s.config.EnableMetrics).
		Msg("Starting ComplexPlot server")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	return nil
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	log.Info().Msg("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// StartWithGracefulShutdown starts the server and blocks until SIGINT or
// SIGTERM, then shuts down within the configured timeout.
func (s *Server) StartWithGracefulShutdown() error {
	if err := s.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer shutdownCancel()

		if err := s.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}

		cancel()
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutdown complete")
	return nil
}

// GetAddr returns the server address
func (s *Server) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// handleOptions handles CORS preflight requests
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

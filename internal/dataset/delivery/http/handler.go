package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/usecase/command"
	"github.com/traceright/dataset-service/internal/dataset/usecase/query"
	"github.com/traceright/dataset-service/pkg/apperr"
	"github.com/traceright/dataset-service/pkg/logger"
)

// DatasetHandler handles HTTP requests for dataset materialization.
type DatasetHandler struct {
	seedHandler   *command.SeedDatasetHandler
	clearHandler  *command.ClearDatasetHandler
	countsHandler *query.GetCountsHandler

	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	documentsWritten *prometheus.CounterVec
	documentsDeleted *prometheus.CounterVec
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(
	seedHandler *command.SeedDatasetHandler,
	clearHandler *command.ClearDatasetHandler,
	countsHandler *query.GetCountsHandler,
) *DatasetHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_requests_total",
			Help: "Total number of requests to dataset endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_request_duration_seconds",
			Help:    "Duration of dataset endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	documentsWritten := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_documents_written_total",
			Help: "Documents written by seeding runs, per collection",
		},
		[]string{"collection"},
	)

	documentsDeleted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_documents_deleted_total",
			Help: "Documents deleted by clear runs, per collection",
		},
		[]string{"collection"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(documentsWritten)
	prometheus.MustRegister(documentsDeleted)

	return &DatasetHandler{
		seedHandler:      seedHandler,
		clearHandler:     clearHandler,
		countsHandler:    countsHandler,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		documentsWritten: documentsWritten,
		documentsDeleted: documentsDeleted,
	}
}

// Response is the JSON envelope of every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *DatasetHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Seed handles POST /admin/dataset/seed
func (h *DatasetHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SeedConfig
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			h.respondErr(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	result, err := h.seedHandler.Handle(r.Context(), command.SeedDatasetCommand{
		CallerID: CallerID(r.Context()),
		Config:   cfg,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	for collection, n := range result.Counts {
		h.documentsWritten.WithLabelValues(collection).Add(float64(n))
	}

	logger.Info(r.Context()).
		Int("collections", len(result.Counts)).
		Dur("duration", result.Duration).
		Msg("Dataset seeded")

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Dataset seeded successfully",
		Data:    result,
	})
}

// Clear handles POST /admin/dataset/clear
func (h *DatasetHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfirmationCode string   `json:"confirmation_code"`
		Collections      []string `json:"collections,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.clearHandler.Handle(r.Context(), command.ClearDatasetCommand{
		CallerID:         CallerID(r.Context()),
		ConfirmationCode: req.ConfirmationCode,
		Collections:      req.Collections,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	for collection, n := range result.Deleted {
		h.documentsDeleted.WithLabelValues(collection).Add(float64(n))
	}

	logger.Info(r.Context()).
		Int("collections", len(result.Deleted)).
		Msg("Dataset cleared")

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Dataset cleared successfully",
		Data:    result,
	})
}

// Counts handles GET /admin/dataset/counts
func (h *DatasetHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.countsHandler.Handle(r.Context(), query.GetCountsQuery{})
	if err != nil {
		h.respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, Response{Success: true, Data: counts})
}

// respondAppError maps the error taxonomy onto status codes.
func (h *DatasetHandler) respondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		h.respondErr(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrPermissionDenied):
		h.respondErr(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrInvalidArgument):
		h.respondErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		h.respondErr(w, http.StatusConflict, err.Error())
	default:
		h.respondErr(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *DatasetHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *DatasetHandler) respondErr(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, Response{Success: false, Error: message})
}

// RegisterRoutes registers all dataset routes
func (h *DatasetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/admin/dataset/seed", h.metricsMiddleware("/admin/dataset/seed", AuthMiddleware(h.Seed))).Methods("POST")
	router.HandleFunc("/admin/dataset/clear", h.metricsMiddleware("/admin/dataset/clear", AuthMiddleware(h.Clear))).Methods("POST")
	router.HandleFunc("/admin/dataset/counts", h.metricsMiddleware("/admin/dataset/counts", AuthMiddleware(h.Counts))).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *DatasetHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			logger.Logger.Error().Err(err).Msg("Health check failed")
			h.respondErr(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		h.respondJSON(w, http.StatusOK, Response{Success: true, Message: "dataset service is healthy"})
	}).Methods("GET")
}

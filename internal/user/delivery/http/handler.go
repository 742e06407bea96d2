package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/internal/user/usecase/command"
	"github.com/traceright/dataset-service/internal/user/usecase/query"
	"github.com/traceright/dataset-service/pkg/apperr"
)

// UserHandler handles HTTP requests for users and role management.
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	setAdminHandler *command.SetAdminHandler
	setRoleHandler  *command.SetRoleHandler
	getUserHandler  *query.GetUserHandler

	validate       *validator.Validate
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler.
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		registerHandler: command.NewRegisterUserHandler(repo),
		loginHandler:    command.NewLoginUserHandler(repo),
		setAdminHandler: command.NewSetAdminHandler(repo),
		setRoleHandler:  command.NewSetRoleHandler(repo),
		getUserHandler:  query.NewGetUserHandler(repo),
		validate:        validator.New(),
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, Response{Success: true, Data: resp})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.getUserHandler.Handle(query.GetUserQuery{UserID: CallerID(r.Context())})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// SetAdmin handles PUT /admin/users/{id}/admin
func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.setAdminHandler.Handle(command.SetAdminCommand{
		CallerID:     CallerID(r.Context()),
		TargetUserID: uint(targetID),
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Admin privilege updated",
		Data:    user,
	})
}

// SetRole handles PUT /admin/users/role
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"required,oneof=user admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.setRoleHandler.Handle(command.SetRoleCommand{
		CallerID: CallerID(r.Context()),
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Role updated",
		Data:    user,
	})
}

// respondAppError maps the error taxonomy onto status codes.
func (h *UserHandler) respondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		h.respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrPermissionDenied):
		h.respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrInvalidArgument):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, Response{Success: false, Error: message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", AuthMiddleware(h.GetProfile))).Methods("GET")

	// Privileged routes; the admin check happens in the usecase against
	// the users table, not against the token's role claim.
	router.HandleFunc("/admin/users/{id}/admin", h.metricsMiddleware("/admin/users/{id}/admin", AuthMiddleware(h.SetAdmin))).Methods("PUT")
	router.HandleFunc("/admin/users/role", h.metricsMiddleware("/admin/users/role", AuthMiddleware(h.SetRole))).Methods("PUT")
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vastrika/storefront/internal/user/domain"
	"github.com/vastrika/storefront/internal/user/usecase/command"
	"github.com/vastrika/storefront/internal/user/usecase/query"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/middleware"
)

// UserHandler handles HTTP requests for users using CQRS pattern
type UserHandler struct {
	// Command handlers
	registerHandler     *command.RegisterUserHandler
	loginHandler        *command.LoginUserHandler
	updateHandler       *command.UpdateUserHandler
	deleteHandler       *command.DeleteUserHandler
	changeRoleHandler   *command.ChangeRoleHandler
	toggleActiveHandler *command.ToggleActiveHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler
	statsHandler   *query.GetStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	registrations  prometheus.Counter
}

// NewUserHandler creates a new user handler from its repository
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_user_requests_total",
			Help: "Total number of requests to the user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_user_request_duration_seconds",
			Help:    "Duration of user requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	registrations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_user_registrations_total",
			Help: "Total number of user registrations",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(registrations)

	return &UserHandler{
		registerHandler:     command.NewRegisterUserHandler(repo),
		loginHandler:        command.NewLoginUserHandler(repo),
		updateHandler:       command.NewUpdateUserHandler(repo),
		deleteHandler:       command.NewDeleteUserHandler(repo),
		changeRoleHandler:   command.NewChangeRoleHandler(repo),
		toggleActiveHandler: command.NewToggleActiveHandler(repo),
		getUserHandler:      query.NewGetUserHandler(repo),
		listHandler:         query.NewListUsersHandler(repo),
		statsHandler:        query.NewGetStatsHandler(repo),
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		registrations:       registrations,
	}
}

// Response is the JSON envelope shared by all storefront endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

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

// RegisterRoutes mounts the auth, profile and admin user endpoints.
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/auth/register", h.metricsMiddleware("/api/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/api/auth/login", h.metricsMiddleware("/api/auth/login", h.Login)).Methods("POST")

	// Authenticated user routes
	router.HandleFunc("/api/users/me", h.metricsMiddleware("/api/users/me", middleware.Auth(h.GetProfile))).Methods("GET")
	router.HandleFunc("/api/users/me", h.metricsMiddleware("/api/users/me", middleware.Auth(h.UpdateProfile))).Methods("PUT")

	// Admin routes
	router.HandleFunc("/api/admin/users", h.metricsMiddleware("/api/admin/users", middleware.Admin(h.CreateUser))).Methods("POST")
	router.HandleFunc("/api/admin/users", h.metricsMiddleware("/api/admin/users", middleware.Admin(h.ListUsers))).Methods("GET")
	router.HandleFunc("/api/admin/users/stats", h.metricsMiddleware("/api/admin/users/stats", middleware.Admin(h.GetStats))).Methods("GET")
	router.HandleFunc("/api/admin/users/{id}", h.metricsMiddleware("/api/admin/users/{id}", middleware.Admin(h.GetUser))).Methods("GET")
	router.HandleFunc("/api/admin/users/{id}", h.metricsMiddleware("/api/admin/users/{id}", middleware.Admin(h.UpdateUser))).Methods("PUT")
	router.HandleFunc("/api/admin/users/{id}", h.metricsMiddleware("/api/admin/users/{id}", middleware.Admin(h.DeleteUser))).Methods("DELETE")
	router.HandleFunc("/api/admin/users/{id}/role", h.metricsMiddleware("/api/admin/users/{id}/role", middleware.Admin(h.ChangeRole))).Methods("PUT")
	router.HandleFunc("/api/admin/users/{id}/active", h.metricsMiddleware("/api/admin/users/{id}/active", middleware.Admin(h.ToggleActive))).Methods("PUT")
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     domain.RoleUser,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.registrations.Inc()
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: user})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	resp, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: resp})
}

// GetProfile handles GET /api/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: userID})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

type updateProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// UpdateProfile handles PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.updateHandler.Handle(r.Context(), command.UpdateUserCommand{
		ID:       userID,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Data: user})
}

// GetUser handles GET /api/admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{
		Role:  params.Get("role"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list users"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// UpdateUser handles PUT /api/admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.updateHandler.Handle(r.Context(), command.UpdateUserCommand{
		ID:       uint(id),
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: uint(id)}); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Uint64("user_id", id).Msg("Failed to delete user")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to delete user"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "User deleted successfully"})
}

// ChangeRole handles PUT /api/admin/users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.changeRoleHandler.Handle(r.Context(), command.ChangeRoleCommand{
		UserID: uint(id),
		Role:   req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// ToggleActive handles PUT /api/admin/users/{id}/active
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.toggleActiveHandler.Handle(r.Context(), command.ToggleActiveCommand{
		UserID:   uint(id),
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// GetStats handles GET /api/admin/users/stats
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute user stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute user stats"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

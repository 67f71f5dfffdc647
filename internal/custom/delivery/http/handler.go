package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vastrika/storefront/internal/custom/domain"
	"github.com/vastrika/storefront/internal/custom/usecase/command"
	"github.com/vastrika/storefront/internal/custom/usecase/query"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/middleware"
)

// CustomHandler handles HTTP requests for custom design requests using CQRS
// pattern
type CustomHandler struct {
	// Command handlers
	submitHandler *command.SubmitRequestHandler
	quoteHandler  *command.QuoteRequestHandler

	// Query handlers
	getRequestHandler   *query.GetRequestHandler
	listRequestsHandler *query.ListRequestsHandler
	optionsHandler      *query.GetOptionsHandler

	requestCounter    *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	requestsSubmitted prometheus.Counter
}

// NewCustomHandler creates a new custom design handler with all its command
// and query handlers wired in
func NewCustomHandler(
	submitHandler *command.SubmitRequestHandler,
	quoteHandler *command.QuoteRequestHandler,
	getRequestHandler *query.GetRequestHandler,
	listRequestsHandler *query.ListRequestsHandler,
	optionsHandler *query.GetOptionsHandler,
) *CustomHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_custom_requests_total",
			Help: "Total number of requests to the custom design endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_custom_request_duration_seconds",
			Help:    "Duration of custom design requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestsSubmitted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_custom_designs_total",
			Help: "Total number of custom design requests submitted",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestsSubmitted)

	return &CustomHandler{
		submitHandler:       submitHandler,
		quoteHandler:        quoteHandler,
		getRequestHandler:   getRequestHandler,
		listRequestsHandler: listRequestsHandler,
		optionsHandler:      optionsHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		requestsSubmitted:   requestsSubmitted,
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

func (h *CustomHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts the custom design endpoints. The options path is
// registered before the {id} route so mux does not swallow it.
func (h *CustomHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/custom/options", h.metricsMiddleware("/api/custom/options", h.GetOptions)).Methods("GET")

	// Customer routes (authentication required)
	router.HandleFunc("/api/custom", h.metricsMiddleware("/api/custom", middleware.Auth(h.SubmitRequest))).Methods("POST")
	router.HandleFunc("/api/custom/my", h.metricsMiddleware("/api/custom/my", middleware.Auth(h.ListMyRequests))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/custom", h.metricsMiddleware("/api/custom", middleware.Admin(h.ListRequests))).Methods("GET")
	router.HandleFunc("/api/custom/{id}/quote", h.metricsMiddleware("/api/custom/{id}/quote", middleware.Admin(h.QuoteRequest))).Methods("POST")

	// Shared route, owner or admin
	router.HandleFunc("/api/custom/{id}", h.metricsMiddleware("/api/custom/{id}", middleware.Auth(h.GetRequest))).Methods("GET")
}

// GetOptions handles GET /api/custom/options
func (h *CustomHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.optionsHandler.Handle(),
	})
}

type submitRequestBody struct {
	Border string `json:"border"`
	Pallu  string `json:"pallu"`
	Color  string `json:"color"`
	Notes  string `json:"notes"`
}

// SubmitRequest handles POST /api/custom
func (h *CustomHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	request, err := h.submitHandler.Handle(r.Context(), command.SubmitRequestCommand{
		UserID: userID,
		Border: req.Border,
		Pallu:  req.Pallu,
		Color:  req.Color,
		Notes:  req.Notes,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.requestsSubmitted.Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Custom design request submitted",
		Data:    request,
	})
}

// GetRequest handles GET /api/custom/{id}
func (h *CustomHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q := query.GetRequestQuery{RequestID: id}
	if role, _ := middleware.RoleFromContext(r.Context()); role != "admin" {
		userID, _ := middleware.UserIDFromContext(r.Context())
		q.UserID = userID
	}

	request, err := h.getRequestHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Custom request not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Str("request_id", id).Msg("Failed to fetch custom request")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to fetch custom request"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: request})
}

// ListMyRequests handles GET /api/custom/my
func (h *CustomHandler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listRequestsHandler.Handle(r.Context(), query.ListRequestsQuery{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to list custom requests")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list custom requests"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// ListRequests handles GET /api/custom
func (h *CustomHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listRequestsHandler.Handle(r.Context(), query.ListRequestsQuery{
		Status: params.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list custom requests")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list custom requests"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

type quoteRequestBody struct {
	Price int64 `json:"price"`
}

// QuoteRequest handles POST /api/custom/{id}/quote
func (h *CustomHandler) QuoteRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req quoteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	request, err := h.quoteHandler.Handle(r.Context(), command.QuoteRequestCommand{
		RequestID: id,
		Price:     req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Custom request not found"})
		case errors.Is(err, domain.ErrRequestResolved):
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: "Custom request already resolved"})
		default:
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: request})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

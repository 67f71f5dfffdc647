package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vastrika/storefront/internal/bargain/domain"
	"github.com/vastrika/storefront/internal/bargain/usecase/command"
	"github.com/vastrika/storefront/internal/bargain/usecase/query"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/middleware"
)

// BargainHandler handles HTTP requests for bargain offers using CQRS pattern
type BargainHandler struct {
	// Command handlers
	submitHandler  *command.SubmitOfferHandler
	respondHandler *command.RespondOfferHandler

	// Query handlers
	getOfferHandler   *query.GetOfferHandler
	listOffersHandler *query.ListOffersHandler

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	offersSubmitted prometheus.Counter
}

// NewBargainHandler creates a new bargain handler with all its command and
// query handlers wired in
func NewBargainHandler(
	submitHandler *command.SubmitOfferHandler,
	respondHandler *command.RespondOfferHandler,
	getOfferHandler *query.GetOfferHandler,
	listOffersHandler *query.ListOffersHandler,
) *BargainHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_bargain_requests_total",
			Help: "Total number of requests to the bargain endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_bargain_request_duration_seconds",
			Help:    "Duration of bargain requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	offersSubmitted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_bargain_offers_total",
			Help: "Total number of bargain offers submitted",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(offersSubmitted)

	return &BargainHandler{
		submitHandler:     submitHandler,
		respondHandler:    respondHandler,
		getOfferHandler:   getOfferHandler,
		listOffersHandler: listOffersHandler,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		offersSubmitted:   offersSubmitted,
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

func (h *BargainHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts the bargain endpoints.
func (h *BargainHandler) RegisterRoutes(router *mux.Router) {
	// Customer routes (authentication required)
	router.HandleFunc("/api/bargains", h.metricsMiddleware("/api/bargains", middleware.Auth(h.SubmitOffer))).Methods("POST")
	router.HandleFunc("/api/bargains/my", h.metricsMiddleware("/api/bargains/my", middleware.Auth(h.ListMyOffers))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/bargains", h.metricsMiddleware("/api/bargains", middleware.Admin(h.ListOffers))).Methods("GET")
	router.HandleFunc("/api/bargains/{id}/respond", h.metricsMiddleware("/api/bargains/{id}/respond", middleware.Admin(h.RespondOffer))).Methods("POST")

	// Shared route, owner or admin
	router.HandleFunc("/api/bargains/{id}", h.metricsMiddleware("/api/bargains/{id}", middleware.Auth(h.GetOffer))).Methods("GET")
}

type submitOfferRequest struct {
	SareeID string `json:"sareeId"`
	Amount  int64  `json:"amount"`
	Note    string `json:"note"`
}

// SubmitOffer handles POST /api/bargains
func (h *BargainHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req submitOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	offer, err := h.submitHandler.Handle(r.Context(), command.SubmitOfferCommand{
		SareeID: req.SareeID,
		UserID:  userID,
		Amount:  req.Amount,
		Note:    req.Note,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.offersSubmitted.Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Bargain offer submitted",
		Data:    offer,
	})
}

// GetOffer handles GET /api/bargains/{id}
func (h *BargainHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q := query.GetOfferQuery{OfferID: id}
	if role, _ := middleware.RoleFromContext(r.Context()); role != "admin" {
		userID, _ := middleware.UserIDFromContext(r.Context())
		q.UserID = userID
	}

	offer, err := h.getOfferHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Bargain offer not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Str("offer_id", id).Msg("Failed to fetch bargain offer")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to fetch bargain offer"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: offer})
}

// ListMyOffers handles GET /api/bargains/my
func (h *BargainHandler) ListMyOffers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listOffersHandler.Handle(r.Context(), query.ListOffersQuery{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to list bargain offers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list bargain offers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// ListOffers handles GET /api/bargains
func (h *BargainHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listOffersHandler.Handle(r.Context(), query.ListOffersQuery{
		SareeID: params.Get("sareeId"),
		Status:  params.Get("status"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list bargain offers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list bargain offers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

type respondOfferRequest struct {
	Resolution    string `json:"resolution"`
	CounterAmount int64  `json:"counterAmount"`
}

// RespondOffer handles POST /api/bargains/{id}/respond
func (h *BargainHandler) RespondOffer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req respondOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	offer, err := h.respondHandler.Handle(r.Context(), command.RespondOfferCommand{
		OfferID:       id,
		Resolution:    req.Resolution,
		CounterAmount: req.CounterAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOfferNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Bargain offer not found"})
		case errors.Is(err, domain.ErrOfferResolved):
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: "Bargain offer already resolved"})
		case errors.Is(err, domain.ErrInvalidResolution):
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid bargain resolution"})
		default:
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: offer})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

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

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/usecase/command"
	"github.com/vastrika/storefront/internal/catalog/usecase/query"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/middleware"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createSareeHandler  *command.CreateSareeHandler
	updateSareeHandler  *command.UpdateSareeHandler
	deleteSareeHandler  *command.DeleteSareeHandler
	updateStockHandler  *command.UpdateStockHandler
	createRegionHandler *command.CreateRegionHandler

	// Query handlers
	listSareesHandler  *query.ListSareesHandler
	getSareeHandler    *query.GetSareeHandler
	listRegionsHandler *query.ListRegionsHandler
	getRegionHandler   *query.GetRegionHandler
	listTypesHandler   *query.ListTypesHandler
	listStatesHandler  *query.ListStatesHandler
	statsHandler       *query.GetStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalSarees    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with all its command and
// query handlers wired in
func NewCatalogHandler(
	createSareeHandler *command.CreateSareeHandler,
	updateSareeHandler *command.UpdateSareeHandler,
	deleteSareeHandler *command.DeleteSareeHandler,
	updateStockHandler *command.UpdateStockHandler,
	createRegionHandler *command.CreateRegionHandler,
	listSareesHandler *query.ListSareesHandler,
	getSareeHandler *query.GetSareeHandler,
	listRegionsHandler *query.ListRegionsHandler,
	getRegionHandler *query.GetRegionHandler,
	listTypesHandler *query.ListTypesHandler,
	listStatesHandler *query.ListStatesHandler,
	statsHandler *query.GetStatsHandler,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_catalog_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalSarees := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_total_sarees",
			Help: "Total number of sarees in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalSarees)

	return &CatalogHandler{
		createSareeHandler:  createSareeHandler,
		updateSareeHandler:  updateSareeHandler,
		deleteSareeHandler:  deleteSareeHandler,
		updateStockHandler:  updateStockHandler,
		createRegionHandler: createRegionHandler,
		listSareesHandler:   listSareesHandler,
		getSareeHandler:     getSareeHandler,
		listRegionsHandler:  listRegionsHandler,
		getRegionHandler:    getRegionHandler,
		listTypesHandler:    listTypesHandler,
		listStatesHandler:   listStatesHandler,
		statsHandler:        statsHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		requestSummary:      requestSummary,
		totalSarees:         totalSarees,
	}
}

// Response is the JSON envelope shared by all storefront endpoints
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts the catalog endpoints. Fixed paths are registered
// before the {id} routes so mux does not swallow them.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/sarees", h.metricsMiddleware("/api/sarees", h.ListSarees)).Methods("GET")
	router.HandleFunc("/api/sarees/types", h.metricsMiddleware("/api/sarees/types", h.ListTypes)).Methods("GET")
	router.HandleFunc("/api/sarees/states", h.metricsMiddleware("/api/sarees/states", h.ListStates)).Methods("GET")
	router.HandleFunc("/api/sarees/stats", h.metricsMiddleware("/api/sarees/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/sarees/{id}", h.metricsMiddleware("/api/sarees/{id}", h.GetSaree)).Methods("GET")
	router.HandleFunc("/api/regions", h.metricsMiddleware("/api/regions", h.ListRegions)).Methods("GET")
	router.HandleFunc("/api/regions/{id}", h.metricsMiddleware("/api/regions/{id}", h.GetRegion)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/sarees", h.metricsMiddleware("/api/sarees", middleware.Admin(h.CreateSaree))).Methods("POST")
	router.HandleFunc("/api/sarees/{id}", h.metricsMiddleware("/api/sarees/{id}", middleware.Admin(h.UpdateSaree))).Methods("PUT")
	router.HandleFunc("/api/sarees/{id}", h.metricsMiddleware("/api/sarees/{id}", middleware.Admin(h.DeleteSaree))).Methods("DELETE")
	router.HandleFunc("/api/sarees/{id}/stock", h.metricsMiddleware("/api/sarees/{id}/stock", middleware.Admin(h.UpdateStock))).Methods("PATCH")
	router.HandleFunc("/api/regions", h.metricsMiddleware("/api/regions", middleware.Admin(h.CreateRegion))).Methods("POST")
}

// ListSarees handles GET /api/sarees
func (h *CatalogHandler) ListSarees(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	raw := domain.RawFilter{
		RegionID:       params.Get("regionId"),
		Type:           params.Get("type"),
		Fabric:         params.Get("fabric"),
		BargainAllowed: params.Get("isBargainAllowed"),
		Search:         params.Get("search"),
		MinPrice:       params.Get("minPrice"),
		MaxPrice:       params.Get("maxPrice"),
		Page:           params.Get("page"),
		Limit:          params.Get("limit"),
	}

	result := h.listSareesHandler.Handle(r.Context(), query.ListSareesQuery{Filter: raw.Normalize()})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// GetSaree handles GET /api/sarees/{id}
func (h *CatalogHandler) GetSaree(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.getSareeHandler.Handle(r.Context(), query.GetSareeQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrSareeNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Saree not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Str("saree_id", id).Msg("Failed to fetch saree")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch saree",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    detail,
	})
}

// ListRegions handles GET /api/regions
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	regions := h.listRegionsHandler.Handle(r.Context(), query.ListRegionsQuery{FeaturedOnly: featuredOnly})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"regions": regions,
		},
	})
}

// GetRegion handles GET /api/regions/{id}
func (h *CatalogHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.getRegionHandler.Handle(r.Context(), query.GetRegionQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Region not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Str("region_id", id).Msg("Failed to fetch region")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch region",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    detail,
	})
}

// ListTypes handles GET /api/sarees/types
func (h *CatalogHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.listTypesHandler.Handle(),
	})
}

// ListStates handles GET /api/sarees/states
func (h *CatalogHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.listStatesHandler.Handle(),
	})
}

// GetStats handles GET /api/sarees/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.statsHandler.Handle(query.GetStatsQuery{})
	h.totalSarees.Set(float64(stats.TotalSarees))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// CreateSaree handles POST /api/sarees
func (h *CatalogHandler) CreateSaree(w http.ResponseWriter, r *http.Request) {
	var req sareeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	saree, err := h.createSareeHandler.Handle(r.Context(), command.CreateSareeCommand{
		ID:                req.ID,
		Title:             req.Title,
		RegionID:          req.RegionID,
		Type:              req.Type,
		Fabric:            req.Fabric,
		Characteristics:   req.Characteristics,
		Price:             req.Price,
		MRP:               req.MRP,
		Stock:             req.Stock,
		Images:            req.Images,
		IsBargainAllowed:  req.IsBargainAllowed,
		PolishPrice:       req.PolishPrice,
		IsCustomAvailable: req.IsCustomAvailable,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create saree")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Saree created successfully",
		Data:    saree,
	})
}

// UpdateSaree handles PUT /api/sarees/{id}
func (h *CatalogHandler) UpdateSaree(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req sareeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	saree, err := h.updateSareeHandler.Handle(r.Context(), command.UpdateSareeCommand{
		ID:                id,
		Title:             req.Title,
		Type:              req.Type,
		Fabric:            req.Fabric,
		Characteristics:   req.Characteristics,
		Price:             req.Price,
		MRP:               req.MRP,
		Stock:             req.Stock,
		Images:            req.Images,
		IsBargainAllowed:  req.IsBargainAllowed,
		PolishPrice:       req.PolishPrice,
		IsCustomAvailable: req.IsCustomAvailable,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSareeNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Saree not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to update saree")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Saree updated successfully",
		Data:    saree,
	})
}

// DeleteSaree handles DELETE /api/sarees/{id}
func (h *CatalogHandler) DeleteSaree(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteSareeHandler.Handle(command.DeleteSareeCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Str("saree_id", id).Msg("Failed to delete saree")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Saree deleted successfully",
	})
}

// UpdateStock handles PATCH /api/sarees/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStockHandler.Handle(command.UpdateStockCommand{SareeID: id, Stock: req.Stock}); err != nil {
		logger.Error(r.Context()).Err(err).Str("saree_id", id).Msg("Failed to update stock")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

// CreateRegion handles POST /api/regions
func (h *CatalogHandler) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		State       string `json:"state"`
		Description string `json:"description"`
		Featured    bool   `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	region, err := h.createRegionHandler.Handle(command.CreateRegionCommand{
		ID:          req.ID,
		Name:        req.Name,
		State:       req.State,
		Description: req.Description,
		Featured:    req.Featured,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create region")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Region created successfully",
		Data:    region,
	})
}

// RegisterHealthCheck registers the health endpoint backed by a raw DB ping
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// sareeRequest is the write-path request body shared by create and update
type sareeRequest struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	RegionID          string   `json:"regionId"`
	Type              string   `json:"type"`
	Fabric            string   `json:"fabric"`
	Characteristics   string   `json:"characteristics"`
	Price             int64    `json:"price"`
	MRP               int64    `json:"mrp"`
	Stock             int      `json:"stock"`
	Images            []string `json:"images"`
	IsBargainAllowed  bool     `json:"isBargainAllowed"`
	PolishPrice       int64    `json:"polishPrice"`
	IsCustomAvailable bool     `json:"isCustomAvailable"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

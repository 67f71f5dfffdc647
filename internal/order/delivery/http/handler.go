package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vastrika/storefront/internal/order/domain"
	"github.com/vastrika/storefront/internal/order/usecase/command"
	"github.com/vastrika/storefront/internal/order/usecase/query"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/middleware"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	placeOrderHandler   *command.PlaceOrderHandler
	updateStatusHandler *command.UpdateStatusHandler

	// Query handlers
	getOrderHandler   *query.GetOrderHandler
	listOrdersHandler *query.ListOrdersHandler
	statsHandler      *query.GetStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler with all its command and query
// handlers wired in
func NewOrderHandler(
	placeOrderHandler *command.PlaceOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	getOrderHandler *query.GetOrderHandler,
	listOrdersHandler *query.ListOrdersHandler,
	statsHandler *query.GetStatsHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_requests_total",
			Help: "Total number of requests to the order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		placeOrderHandler:   placeOrderHandler,
		updateStatusHandler: updateStatusHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		statsHandler:        statsHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		ordersPlaced:        ordersPlaced,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts the order endpoints. Fixed paths are registered
// before the {id} routes so mux does not swallow them.
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Customer routes (authentication required)
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", middleware.Auth(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/api/orders/my", h.metricsMiddleware("/api/orders/my", middleware.Auth(h.ListMyOrders))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", middleware.Admin(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/stats", h.metricsMiddleware("/api/orders/stats", middleware.Admin(h.GetStats))).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.metricsMiddleware("/api/orders/{id}/status", middleware.Admin(h.UpdateStatus))).Methods("PATCH")

	// Shared route, owner or admin
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", middleware.Auth(h.GetOrder))).Methods("GET")
}

type orderItemRequest struct {
	SareeID    string `json:"sareeId"`
	Quantity   int    `json:"quantity"`
	WithPolish bool   `json:"withPolish"`
}

type placeOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingName    string             `json:"shippingName"`
	ShippingPhone   string             `json:"shippingPhone"`
	ShippingAddress string             `json:"shippingAddress"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.PlaceOrderCommand{
		UserID:          userID,
		PaymentMethod:   req.PaymentMethod,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, command.PlaceOrderItem{
			SareeID:    item.SareeID,
			Quantity:   item.Quantity,
			WithPolish: item.WithPolish,
		})
	}

	order, err := h.placeOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
			return
		}
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to place order")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.ordersPlaced.Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q := query.GetOrderQuery{OrderID: id}
	if role, _ := middleware.RoleFromContext(r.Context()); role != "admin" {
		userID, _ := middleware.UserIDFromContext(r.Context())
		q.UserID = userID
	}

	order, err := h.getOrderHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Str("order_id", id).Msg("Failed to fetch order")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to fetch order"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListMyOrders handles GET /api/orders/my
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listOrdersHandler.Handle(r.Context(), query.ListOrdersQuery{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listOrdersHandler.Handle(r.Context(), query.ListOrdersQuery{
		Status: params.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	err := h.updateStatusHandler.Handle(r.Context(), command.UpdateStatusCommand{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		case errors.Is(err, domain.ErrInvalidStatus):
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order status"})
		default:
			logger.Error(r.Context()).Err(err).Str("order_id", id).Msg("Failed to update order status")
			respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to update order status"})
		}
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated",
	})
}

// GetStats handles GET /api/orders/stats
func (h *OrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute order stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute order stats"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

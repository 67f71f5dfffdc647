package http

// PlaceOrder godoc
// @Summary Place an order
// @Description Place an order for one or more sarees; prices are resolved from the catalog at purchase time
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body object{items=array,paymentMethod=string,shippingName=string,shippingPhone=string,shippingAddress=string} true "Order payload"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// GetOrder godoc
// @Summary Get an order
// @Description Get an order by id; customers see only their own orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// ListMyOrders godoc
// @Summary List my orders
// @Description List the authenticated customer's orders, newest first
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{orders=array,pagination=object}}
// @Router /api/orders/my [get]
func (h *OrderHandler) ListMyOrdersDoc() {}

// ListOrders godoc
// @Summary List all orders
// @Description List all orders with optional status filter (admin only)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status filter"
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{orders=array,pagination=object}}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// UpdateStatus godoc
// @Summary Update order status
// @Description Move an order to a new status (admin only)
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body object{status=string} true "New status"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatusDoc() {}

// GetStats godoc
// @Summary Order statistics
// @Description Order counts and revenue grouped by status (admin only)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=object{totalOrders=int,totalRevenue=int,countByStatus=object}}
// @Router /api/orders/stats [get]
func (h *OrderHandler) GetStatsDoc() {}

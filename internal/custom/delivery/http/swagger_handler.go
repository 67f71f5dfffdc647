package http

// GetOptions godoc
// @Summary Design option catalogs
// @Description Border styles, pallu designs and base colors for the custom builder
// @Tags Custom
// @Produce json
// @Success 200 {object} object{success=bool,data=object{borders=array,pallus=array,colors=array}}
// @Router /api/custom/options [get]
func (h *CustomHandler) GetOptionsDoc() {}

// SubmitRequest godoc
// @Summary Submit a custom design request
// @Description Submit a design built from the option catalogs; unknown option ids are rejected
// @Tags Custom
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{border=string,pallu=string,color=string,notes=string} true "Design selections"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/custom [post]
func (h *CustomHandler) SubmitRequestDoc() {}

// GetRequest godoc
// @Summary Get a custom design request
// @Tags Custom
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/custom/{id} [get]
func (h *CustomHandler) GetRequestDoc() {}

// ListMyRequests godoc
// @Summary List my custom design requests
// @Tags Custom
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{requests=array,pagination=object}}
// @Router /api/custom/my [get]
func (h *CustomHandler) ListMyRequestsDoc() {}

// QuoteRequest godoc
// @Summary Quote a custom design request
// @Description Quote a submitted request with a price, or decline it with price 0 (admin only)
// @Tags Custom
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param quote body object{price=int} true "Quoted price"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/custom/{id}/quote [post]
func (h *CustomHandler) QuoteRequestDoc() {}

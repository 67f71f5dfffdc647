package http

// SubmitOffer godoc
// @Summary Submit a bargain offer
// @Description Submit a price offer on a bargain-enabled saree; the offer must be positive and below the list price
// @Tags Bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offer body object{sareeId=string,amount=int,note=string} true "Offer payload"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/bargains [post]
func (h *BargainHandler) SubmitOfferDoc() {}

// GetOffer godoc
// @Summary Get a bargain offer
// @Description Get a bargain offer by id; customers see only their own offers
// @Tags Bargains
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/bargains/{id} [get]
func (h *BargainHandler) GetOfferDoc() {}

// ListMyOffers godoc
// @Summary List my bargain offers
// @Tags Bargains
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{offers=array,pagination=object}}
// @Router /api/bargains/my [get]
func (h *BargainHandler) ListMyOffersDoc() {}

// ListOffers godoc
// @Summary List all bargain offers
// @Description List all offers with optional saree and status filters (admin only)
// @Tags Bargains
// @Produce json
// @Security BearerAuth
// @Param sareeId query string false "Filter by saree"
// @Param status query string false "Offer status filter"
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{offers=array,pagination=object}}
// @Router /api/bargains [get]
func (h *BargainHandler) ListOffersDoc() {}

// RespondOffer godoc
// @Summary Respond to a bargain offer
// @Description Accept, counter or decline a pending offer (admin only); counter requires a counterAmount between the offer and the list price
// @Tags Bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param resolution body object{resolution=string,counterAmount=int} true "accept, counter or decline"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/bargains/{id}/respond [post]
func (h *BargainHandler) RespondOfferDoc() {}

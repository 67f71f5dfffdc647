package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListSarees godoc
// @Summary List catalog sarees
// @Description List sarees with filtering and pagination; serves sample data when the store is empty or unreachable
// @Tags Catalog
// @Produce json
// @Param regionId query string false "Region ID"
// @Param type query string false "Type substring (case-insensitive)"
// @Param fabric query string false "Fabric substring (case-insensitive)"
// @Param isBargainAllowed query bool false "Bargain flag"
// @Param search query string false "Free-text search over title, type and characteristics"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param page query int false "Page (1-indexed, default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} object{success=bool,data=object{sarees=array,pagination=object{page=int,limit=int,total=int,totalPages=int}}}
// @Router /api/sarees [get]
func (h *CatalogHandler) ListSareesDoc() {}

// GetSaree godoc
// @Summary Get a saree
// @Description Get a saree by id with related sarees from the same region
// @Tags Catalog
// @Produce json
// @Param id path string true "Saree ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sarees/{id} [get]
func (h *CatalogHandler) GetSareeDoc() {}

// ListRegions godoc
// @Summary List weaving regions
// @Description List regions, featured first, with saree counts
// @Tags Catalog
// @Produce json
// @Param featured query bool false "Only featured regions"
// @Success 200 {object} object{success=bool,data=object{regions=array}}
// @Router /api/regions [get]
func (h *CatalogHandler) ListRegionsDoc() {}

// GetRegion godoc
// @Summary Get a region
// @Description Get a region by id with up to twenty of its sarees
// @Tags Catalog
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/regions/{id} [get]
func (h *CatalogHandler) GetRegionDoc() {}

// CreateSaree godoc
// @Summary Create a saree
// @Description Add a saree to the catalog (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/sarees [post]
func (h *CatalogHandler) CreateSareeDoc() {}

// UpdateStock godoc
// @Summary Update saree stock
// @Description Set the stock level of a saree (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Saree ID"
// @Param request body object{stock=int} true "Stock data"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/sarees/{id}/stock [patch]
func (h *CatalogHandler) UpdateStockDoc() {}

package query

import (
	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/sample"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats aggregates the counts shown on the admin dashboard
type CatalogStats struct {
	TotalSarees  int64 `json:"totalSarees"`
	TotalRegions int64 `json:"totalRegions"`
	SampleData   bool  `json:"sampleData"`
}

// GetStatsHandler handles the catalog stats query
type GetStatsHandler struct {
	sarees  domain.SareeRepository
	regions domain.RegionRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(sarees domain.SareeRepository, regions domain.RegionRepository) *GetStatsHandler {
	return &GetStatsHandler{sarees: sarees, regions: regions}
}

// Handle executes the stats query. An unreachable store reports the sample
// dataset sizes so the dashboard still renders.
func (h *GetStatsHandler) Handle(q GetStatsQuery) CatalogStats {
	sareeCount, sErr := h.sarees.Count()
	regionCount, rErr := h.regions.Count()

	if sErr != nil || rErr != nil || sareeCount == 0 {
		return CatalogStats{
			TotalSarees:  int64(len(sample.Sarees())),
			TotalRegions: int64(len(sample.Regions())),
			SampleData:   true,
		}
	}

	return CatalogStats{
		TotalSarees:  sareeCount,
		TotalRegions: regionCount,
	}
}

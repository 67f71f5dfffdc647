// Package resolver implements the two-tier catalog resolution policy: query
// the persistent store first, and fall back to the built-in sample dataset
// whenever the store errors or returns no rows. The storefront must always
// render something demonstrable, even against an unseeded or unreachable
// database, so a store failure on this path is recovered locally and never
// surfaced to the client.
package resolver

import (
	"context"
	"time"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/sample"
	"github.com/vastrika/storefront/pkg/logger"
)

// Source identifies which tier produced a result. The response shape is
// identical for both, so callers only use this for logging and metrics.
type Source string

const (
	SourceStore  Source = "store"
	SourceSample Source = "sample"
)

// DefaultStoreTimeout bounds the store round trip. A timeout is treated
// exactly like a query error: the resolver falls back to sample data.
const DefaultStoreTimeout = 3 * time.Second

// storeResult is the explicit outcome of a store query, replacing
// thrown-exception control flow with a value the resolver switches on.
type storeResult struct {
	Sarees []domain.Saree
	Total  int64
	Err    error
}

// SareePage is a resolved catalog listing window
type SareePage struct {
	Sarees     []domain.Saree
	Pagination domain.Pagination
	Source     Source
}

// SareeDetail is a resolved single saree with its related items
type SareeDetail struct {
	Saree   *domain.Saree
	Related []domain.Saree
	Source  Source
}

// RegionDetail is a resolved region with its sarees
type RegionDetail struct {
	Region *domain.Region
	Sarees []domain.Saree
	Source Source
}

// Resolver orchestrates store-first, sample-second resolution
type Resolver struct {
	sarees  domain.SareeRepository
	regions domain.RegionRepository
	timeout time.Duration
}

func New(sarees domain.SareeRepository, regions domain.RegionRepository, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &Resolver{sarees: sarees, regions: regions, timeout: timeout}
}

func (r *Resolver) queryStore(ctx context.Context, filter domain.SareeFilter) storeResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sarees, total, err := r.sarees.FindFiltered(ctx, filter)
	return storeResult{Sarees: sarees, Total: total, Err: err}
}

// ListSarees resolves a catalog listing. A store hit with at least one row is
// returned untouched; zero rows and store errors both route to the sample
// dataset, filtered by the identical criteria and paginated identically.
// It cannot fail: the sample tier is a process-wide constant.
func (r *Resolver) ListSarees(ctx context.Context, filter domain.SareeFilter) SareePage {
	res := r.queryStore(ctx, filter)
	if res.Err == nil && len(res.Sarees) > 0 {
		return SareePage{
			Sarees:     res.Sarees,
			Pagination: domain.NewPagination(filter.Page, filter.Limit, res.Total),
			Source:     SourceStore,
		}
	}
	if res.Err != nil {
		logger.Warn(ctx).Err(res.Err).Msg("Store query failed, serving sample catalog")
	}

	var matched []domain.Saree
	for _, s := range sample.Sarees() {
		if filter.Matches(&s) {
			matched = append(matched, s)
		}
	}

	total := int64(len(matched))
	return SareePage{
		Sarees:     window(matched, filter.Skip(), filter.Limit),
		Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
		Source:     SourceSample,
	}
}

// GetSaree resolves a single saree plus up to four related sarees from the
// same region. Store misses and store errors fall back to the sample
// dataset; a saree absent from both tiers is a genuine not-found.
func (r *Resolver) GetSaree(ctx context.Context, id string) (*SareeDetail, error) {
	ctx2, cancel := context.WithTimeout(ctx, r.timeout)
	saree, err := r.sarees.FindByID(ctx2, id)
	cancel()

	if err == nil {
		related, relErr := r.sarees.FindRelated(ctx, saree.RegionID, saree.ID, 4)
		if relErr != nil {
			// Related items are decorative, never fatal.
			related = nil
		}
		return &SareeDetail{Saree: saree, Related: related, Source: SourceStore}, nil
	}

	s := sample.SareeByID(id)
	if s == nil {
		return nil, domain.ErrSareeNotFound
	}

	var related []domain.Saree
	for _, rs := range sample.SareesByRegion(s.RegionID) {
		if rs.ID != s.ID && len(related) < 4 {
			related = append(related, rs)
		}
	}
	return &SareeDetail{Saree: s, Related: related, Source: SourceSample}, nil
}

// ListRegions resolves the region listing, featured entries first. Empty and
// erroring stores both serve the sample regions.
func (r *Resolver) ListRegions(ctx context.Context, featuredOnly bool) ([]domain.Region, Source) {
	ctx2, cancel := context.WithTimeout(ctx, r.timeout)
	regions, err := r.regions.FindAll(ctx2, featuredOnly)
	cancel()

	if err == nil && len(regions) > 0 {
		return regions, SourceStore
	}
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Region query failed, serving sample regions")
	}

	var out []domain.Region
	for _, region := range sample.Regions() {
		if featuredOnly && !region.Featured {
			continue
		}
		out = append(out, region)
	}
	return out, SourceSample
}

// GetRegion resolves a region with up to twenty of its sarees, newest first
func (r *Resolver) GetRegion(ctx context.Context, id string) (*RegionDetail, error) {
	ctx2, cancel := context.WithTimeout(ctx, r.timeout)
	region, err := r.regions.FindByID(ctx2, id)
	cancel()

	if err == nil {
		page := r.queryStore(ctx, domain.SareeFilter{RegionID: id, Page: 1, Limit: 20})
		if page.Err != nil {
			page.Sarees = nil
		}
		return &RegionDetail{Region: region, Sarees: page.Sarees, Source: SourceStore}, nil
	}

	region = sample.RegionByID(id)
	if region == nil {
		return nil, domain.ErrRegionNotFound
	}
	return &RegionDetail{
		Region: region,
		Sarees: sample.SareesByRegion(id),
		Source: SourceSample,
	}, nil
}

// window applies the uniform (skip, limit) slice regardless of data source
func window(items []domain.Saree, skip, limit int) []domain.Saree {
	if skip >= len(items) {
		return []domain.Saree{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

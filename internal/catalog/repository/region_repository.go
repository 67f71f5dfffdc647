package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// GormRegionRepository implements RegionRepository using GORM
type GormRegionRepository struct {
	db *gorm.DB
}

func NewGormRegionRepository(db *gorm.DB) *GormRegionRepository {
	return &GormRegionRepository{db: db}
}

func (r *GormRegionRepository) Create(region *domain.Region) error {
	if err := r.db.Create(region).Error; err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

func (r *GormRegionRepository) Upsert(region *domain.Region) error {
	if err := r.db.Save(region).Error; err != nil {
		return fmt.Errorf("failed to upsert region: %w", err)
	}
	return nil
}

func (r *GormRegionRepository) FindByID(ctx context.Context, id string) (*domain.Region, error) {
	var region domain.Region
	if err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		return nil, err
	}
	r.db.Model(&domain.Saree{}).Where("region_id = ?", id).Count(&region.SareeCount)
	return &region, nil
}

// FindAll returns regions ordered featured-first then by name, with their
// saree counts populated from a single grouped count query.
func (r *GormRegionRepository) FindAll(ctx context.Context, featuredOnly bool) ([]domain.Region, error) {
	q := r.db.WithContext(ctx).Order("featured DESC, name ASC")
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var regions []domain.Region
	if err := q.Find(&regions).Error; err != nil {
		return nil, fmt.Errorf("failed to find regions: %w", err)
	}

	type regionCount struct {
		RegionID string
		Count    int64
	}
	var counts []regionCount
	err := r.db.WithContext(ctx).Model(&domain.Saree{}).
		Select("region_id, COUNT(*) AS count").
		Group("region_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sarees per region: %w", err)
	}

	byRegion := make(map[string]int64, len(counts))
	for _, c := range counts {
		byRegion[c.RegionID] = c.Count
	}
	for i := range regions {
		regions[i].SareeCount = byRegion[regions[i].ID]
	}
	return regions, nil
}

func (r *GormRegionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Region{}).Count(&count).Error
	return count, err
}
